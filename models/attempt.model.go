package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Attempt statuses. Transitions are strictly forward:
// IN_PROGRESS -> COMPLETED. A completed attempt is immutable.
const (
	AttemptInProgress = "IN_PROGRESS"
	AttemptCompleted  = "COMPLETED"
)

// QuizAttempt represents a user's run through a quiz
type QuizAttempt struct {
	gorm.Model
	Reference        string         `json:"reference" gorm:"uniqueIndex"`
	QuizID           uint           `json:"quiz_id" gorm:"index;not null"`
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	Status           string         `json:"status" gorm:"default:'IN_PROGRESS'"`
	Answers          datatypes.JSON `json:"answers"`      // array of AttemptAnswer
	ReviewLater      datatypes.JSON `json:"review_later"` // array of question IDs
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at"`
	TimeTakenSeconds int            `json:"time_taken_seconds" gorm:"default:0"`
	Score            int            `json:"score" gorm:"default:0"`
	MaxScore         int            `json:"max_score" gorm:"default:0"`
	Percentage       float64        `json:"percentage" gorm:"default:0"`
}

// AttemptAnswer is a single recorded answer inside QuizAttempt.Answers.
// IsCorrect is computed server side against the stored correct option.
type AttemptAnswer struct {
	QuestionID       uint `json:"question_id"`
	SelectedOptionID uint `json:"selected_option_id"`
	IsCorrect        bool `json:"is_correct"`
	TimeTakenSeconds int  `json:"time_taken_seconds"`
}
