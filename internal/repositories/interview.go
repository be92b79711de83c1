package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"mockmate/interview-prep/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	FindAllByUserID(userID uuid.UUID) ([]models.Interview, error)
	UpdateAnswersAndScore(id uuid.UUID, answers []string, score int, feedback string) (*models.Interview, error)
	DeleteByID(id uuid.UUID) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}

// FindAllByUserID implements InterviewRepository. Newest first.
func (r *interviewRepository) FindAllByUserID(userID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// UpdateAnswersAndScore overwrites the answers array together with the
// aggregate score and feedback, and returns the updated record. Last write
// wins; there is no optimistic locking on interviews.
func (r *interviewRepository) UpdateAnswersAndScore(id uuid.UUID, answers []string, score int, feedback string) (*models.Interview, error) {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"answers":  pq.StringArray(answers),
			"score":    score,
			"feedback": feedback,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindByID(id)
}

// DeleteByID implements InterviewRepository.
func (r *interviewRepository) DeleteByID(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Interview{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
