package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/repositories"
)

// InterviewService orchestrates the interview lifecycle: question generation
// on create, retrieval, answer scoring on submit, and deletion.
type InterviewService interface {
	CreateInterview(ctx context.Context, req models.CreateInterviewRequest) (*models.Interview, error)
	GetInterviewByID(id uuid.UUID) (*models.Interview, error)
	GetAllInterviewsByUser(userID uuid.UUID) ([]models.Interview, error)
	SubmitAnswers(ctx context.Context, id uuid.UUID, answers []string, userID string) (*models.Interview, error)
	DeleteInterview(id uuid.UUID) error
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	questions     QuestionGenerator
	scorer        AnswerScorer
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	questions QuestionGenerator,
	scorer AnswerScorer,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questions:     questions,
		scorer:        scorer,
	}
}

// CreateInterview implements InterviewService. Question generation is total,
// so creation only fails on bad input or a store error.
func (s *interviewService) CreateInterview(ctx context.Context, req models.CreateInterviewRequest) (*models.Interview, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	log.Println("📝 Generating questions...")
	questions := s.questions.GenerateQuestions(ctx, req.ResumeText, req.JdText)

	interview := &models.Interview{
		ID:        uuid.New(),
		UserID:    userID,
		ResumeURL: req.ResumeURL,
		JdURL:     req.JdURL,
		Questions: questions,
		Answers:   make([]string, len(questions)),
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, err
	}

	return interview, nil
}

// GetInterviewByID implements InterviewService.
func (s *interviewService) GetInterviewByID(id uuid.UUID) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return interview, nil
}

// GetAllInterviewsByUser implements InterviewService.
func (s *interviewService) GetAllInterviewsByUser(userID uuid.UUID) ([]models.Interview, error) {
	return s.interviewRepo.FindAllByUserID(userID)
}

// SubmitAnswers implements InterviewService. The userID is recorded for
// attribution only; ownership is enforced at the HTTP boundary. Scoring
// degrades per question rather than failing, so the only error paths here are
// a missing interview and a store failure.
func (s *interviewService) SubmitAnswers(ctx context.Context, id uuid.UUID, answers []string, userID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	score, feedback := s.scorer.ScoreAnswers(ctx, interview, answers)

	// Persist the full answers array sized to the question list, so the
	// one-slot-per-question shape survives short submissions.
	full := make([]string, len(interview.Questions))
	copy(full, answers)

	updated, err := s.interviewRepo.UpdateAnswersAndScore(id, full, score, feedback)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Raced a concurrent delete.
			return nil, ErrNotFound
		}
		return nil, err
	}

	return updated, nil
}

// DeleteInterview implements InterviewService. Deleting an already-deleted id
// yields the same ErrNotFound signal, never a crash.
func (s *interviewService) DeleteInterview(id uuid.UUID) error {
	err := s.interviewRepo.DeleteByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
