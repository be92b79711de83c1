package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleCreate handles POST /interviews/create
func (h *InterviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	// Reject before question generation ever runs.
	if req.ResumeURL == "" || req.JdURL == "" || req.ResumeText == "" || req.JdText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	interview, err := h.interviewService.CreateInterview(c.Context(), req)
	if err != nil {
		log.Printf("❌ Error creating interview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Interview created successfully",
		"interview": interview,
	})
}

// HandleGetAllByUser handles GET /interviews/all/:id
func (h *InterviewHandler) HandleGetAllByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User ID is required",
		})
	}

	interviews, err := h.interviewService.GetAllInterviewsByUser(userID)
	if err != nil {
		log.Printf("❌ Error fetching interviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch interviews",
		})
	}

	return c.JSON(fiber.Map{
		"interviews": interviews,
	})
}

// HandleGetByID handles GET /interviews/:id
func (h *InterviewHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewService.GetInterviewByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Interview not found",
			})
		}
		log.Printf("❌ Error fetching interview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch interview",
		})
	}

	return c.JSON(interview)
}

// HandleSubmitAnswers handles POST /interviews/submit/:id
func (h *InterviewHandler) HandleSubmitAnswers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid interview ID format",
		})
	}

	var req models.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if req.Answers == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	result, err := h.interviewService.SubmitAnswers(c.Context(), id, req.Answers, req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Interview not found",
			})
		}
		log.Printf("❌ Error submitting answers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to submit answers",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Answers submitted successfully",
		"result":  result,
	})
}

// HandleDelete handles DELETE /interviews/:id
func (h *InterviewHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid interview ID format",
		})
	}

	if err := h.interviewService.DeleteInterview(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Interview not found",
			})
		}
		log.Printf("❌ Error deleting interview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete interview",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Interview deleted successfully",
	})
}
