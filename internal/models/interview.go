package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Interview holds one question/answer/score cycle for one owner. Questions are
// generated once at creation and never change; answers always have one slot
// per question. Score and feedback stay null together until answers are
// submitted, and both are overwritten on every re-submission.
type Interview struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	ResumeURL string         `gorm:"type:text;not null" json:"resumeUrl"`
	JdURL     string         `gorm:"type:text;not null" json:"jdUrl"`
	Questions pq.StringArray `gorm:"type:text[];not null" json:"questions"`
	Answers   pq.StringArray `gorm:"type:text[];not null" json:"answers"`
	Score     *int           `gorm:"type:integer" json:"score"`
	Feedback  *string        `gorm:"type:text" json:"feedback"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Interview) TableName() string {
	return "interviews"
}

type CreateInterviewRequest struct {
	ResumeURL  string `json:"resumeUrl"`
	JdURL      string `json:"jdUrl"`
	ResumeText string `json:"resumeText"`
	JdText     string `json:"jdText"`
	UserID     string `json:"userId"`
}

type SubmitAnswersRequest struct {
	Answers []string `json:"answers"`
	UserID  string   `json:"userId"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}
