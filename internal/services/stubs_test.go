package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/repositories"
)

// fakeGemini replays canned responses (or errors) in call order, recording
// every prompt it was given.
type fakeGemini struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	if len(f.responses) > 0 {
		return f.responses[len(f.responses)-1], nil
	}
	return "", nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeInterviewRepo is an in-memory InterviewRepository.
type fakeInterviewRepo struct {
	interviews map[uuid.UUID]*models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[uuid.UUID]*models.Interview)}
}

func (f *fakeInterviewRepo) Create(interview *models.Interview) error {
	cp := *interview
	f.interviews[interview.ID] = &cp
	return nil
}

func (f *fakeInterviewRepo) FindByID(id uuid.UUID) (*models.Interview, error) {
	if iv, ok := f.interviews[id]; ok {
		cp := *iv
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInterviewRepo) FindAllByUserID(userID uuid.UUID) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range f.interviews {
		if iv.UserID == userID {
			out = append(out, *iv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeInterviewRepo) UpdateAnswersAndScore(id uuid.UUID, answers []string, score int, feedback string) (*models.Interview, error) {
	iv, ok := f.interviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	iv.Answers = append([]string(nil), answers...)
	iv.Score = &score
	iv.Feedback = &feedback
	cp := *iv
	return &cp, nil
}

func (f *fakeInterviewRepo) DeleteByID(id uuid.UUID) error {
	if _, ok := f.interviews[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.interviews, id)
	return nil
}
