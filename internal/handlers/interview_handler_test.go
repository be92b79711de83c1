package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/services"
)

// fakeInterviewService records calls and returns canned results.
type fakeInterviewService struct {
	interview  *models.Interview
	interviews []models.Interview
	err        error

	createCalls int
	submitted   []string
}

func (f *fakeInterviewService) CreateInterview(_ context.Context, req models.CreateInterviewRequest) (*models.Interview, error) {
	f.createCalls++
	return f.interview, f.err
}

func (f *fakeInterviewService) GetInterviewByID(uuid.UUID) (*models.Interview, error) {
	return f.interview, f.err
}

func (f *fakeInterviewService) GetAllInterviewsByUser(uuid.UUID) ([]models.Interview, error) {
	return f.interviews, f.err
}

func (f *fakeInterviewService) SubmitAnswers(_ context.Context, _ uuid.UUID, answers []string, _ string) (*models.Interview, error) {
	f.submitted = answers
	return f.interview, f.err
}

func (f *fakeInterviewService) DeleteInterview(uuid.UUID) error {
	return f.err
}

func newInterviewApp(svc services.InterviewService) *fiber.App {
	app := fiber.New()
	h := NewInterviewHandler(svc)
	interviews := app.Group("/api/interviews")
	interviews.Post("/create", h.HandleCreate)
	interviews.Get("/all/:id", h.HandleGetAllByUser)
	interviews.Get("/:id", h.HandleGetByID)
	interviews.Post("/submit/:id", h.HandleSubmitAnswers)
	interviews.Delete("/:id", h.HandleDelete)
	return app
}

func sampleInterview() *models.Interview {
	score := 8
	feedback := "solid answers"
	return &models.Interview{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ResumeURL: "https://cdn.example.com/resume.pdf",
		JdURL:     "https://cdn.example.com/jd.pdf",
		Questions: []string{"q1", "q2", "q3", "q4", "q5"},
		Answers:   []string{"a1", "a2", "a3", "a4", "a5"},
		Score:     &score,
		Feedback:  &feedback,
	}
}

func TestHandleCreateRejectsMissingFields(t *testing.T) {
	svc := &fakeInterviewService{}
	app := newInterviewApp(svc)

	// resumeText missing.
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/interviews/create",
		`{"resumeUrl":"https://cdn/r.pdf","jdUrl":"https://cdn/j.pdf","resumeText":"","jdText":"jd","userId":"`+uuid.New().String()+`"}`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["message"] != "All fields are required" {
		t.Errorf("message = %v", body["message"])
	}
	if svc.createCalls != 0 {
		t.Error("question generation must not run for invalid input")
	}
}

func TestHandleCreateSuccess(t *testing.T) {
	interview := sampleInterview()
	interview.Score = nil
	interview.Feedback = nil
	svc := &fakeInterviewService{interview: interview}
	app := newInterviewApp(svc)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/interviews/create",
		`{"resumeUrl":"https://cdn/r.pdf","jdUrl":"https://cdn/j.pdf","resumeText":"resume","jdText":"jd","userId":"`+interview.UserID.String()+`"}`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["message"] != "Interview created successfully" {
		t.Errorf("message = %v", body["message"])
	}
	created, ok := body["interview"].(map[string]any)
	if !ok {
		t.Fatalf("body missing interview object: %v", body)
	}
	if qs, ok := created["questions"].([]any); !ok || len(qs) != 5 {
		t.Errorf("questions = %v", created["questions"])
	}
	// Unscored interviews serialize score and feedback as explicit nulls.
	if v, present := created["score"]; !present || v != nil {
		t.Errorf("score = %v, present = %v", v, present)
	}
	if v, present := created["feedback"]; !present || v != nil {
		t.Errorf("feedback = %v, present = %v", v, present)
	}
}

func TestHandleGetAllByUser(t *testing.T) {
	t.Run("bad user id", func(t *testing.T) {
		app := newInterviewApp(&fakeInterviewService{})

		resp, err := app.Test(jsonRequest(fiber.MethodGet, "/api/interviews/all/not-a-uuid", ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "User ID is required" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("returns list", func(t *testing.T) {
		svc := &fakeInterviewService{interviews: []models.Interview{*sampleInterview(), *sampleInterview()}}
		app := newInterviewApp(svc)

		resp, err := app.Test(jsonRequest(fiber.MethodGet, "/api/interviews/all/"+uuid.New().String(), ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if list, ok := body["interviews"].([]any); !ok || len(list) != 2 {
			t.Errorf("interviews = %v", body["interviews"])
		}
	})
}

func TestHandleGetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		app := newInterviewApp(&fakeInterviewService{err: services.ErrNotFound})

		resp, err := app.Test(jsonRequest(fiber.MethodGet, "/api/interviews/"+uuid.New().String(), ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Interview not found" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("found", func(t *testing.T) {
		interview := sampleInterview()
		app := newInterviewApp(&fakeInterviewService{interview: interview})

		resp, err := app.Test(jsonRequest(fiber.MethodGet, "/api/interviews/"+interview.ID.String(), ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["id"] != interview.ID.String() {
			t.Errorf("id = %v", body["id"])
		}
		if body["score"] != float64(8) {
			t.Errorf("score = %v", body["score"])
		}
	})
}

func TestHandleSubmitAnswers(t *testing.T) {
	t.Run("missing answers field", func(t *testing.T) {
		svc := &fakeInterviewService{}
		app := newInterviewApp(svc)

		resp, err := app.Test(jsonRequest(fiber.MethodPost,
			"/api/interviews/submit/"+uuid.New().String(),
			fmt.Sprintf(`{"userId":%q}`, uuid.New().String())))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "All fields are required" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		app := newInterviewApp(&fakeInterviewService{err: services.ErrNotFound})

		resp, err := app.Test(jsonRequest(fiber.MethodPost,
			"/api/interviews/submit/"+uuid.New().String(),
			`{"answers":["a1"],"userId":"`+uuid.New().String()+`"}`))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("success", func(t *testing.T) {
		interview := sampleInterview()
		svc := &fakeInterviewService{interview: interview}
		app := newInterviewApp(svc)

		resp, err := app.Test(jsonRequest(fiber.MethodPost,
			"/api/interviews/submit/"+interview.ID.String(),
			`{"answers":["a1","a2","a3","a4","a5"],"userId":"`+interview.UserID.String()+`"}`))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["message"] != "Answers submitted successfully" {
			t.Errorf("message = %v", body["message"])
		}
		result, ok := body["result"].(map[string]any)
		if !ok {
			t.Fatalf("body missing result object: %v", body)
		}
		if result["score"] != float64(8) {
			t.Errorf("score = %v", result["score"])
		}
		if len(svc.submitted) != 5 {
			t.Errorf("handler passed %d answers, want 5", len(svc.submitted))
		}
	})
}

func TestHandleDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		app := newInterviewApp(&fakeInterviewService{err: services.ErrNotFound})

		resp, err := app.Test(jsonRequest(fiber.MethodDelete, "/api/interviews/"+uuid.New().String(), ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Interview not found" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("success", func(t *testing.T) {
		app := newInterviewApp(&fakeInterviewService{})

		resp, err := app.Test(jsonRequest(fiber.MethodDelete, "/api/interviews/"+uuid.New().String(), ""))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if body := decodeBody(t, resp); body["message"] != "Interview deleted successfully" {
			t.Errorf("message = %v", body["message"])
		}
	})
}
