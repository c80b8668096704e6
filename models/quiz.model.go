package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz represents an ordered collection of questions
type Quiz struct {
	gorm.Model
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description"`
	Category         string         `json:"category" gorm:"index"`
	Difficulty       string         `json:"difficulty" gorm:"index"`
	TimeLimitMinutes int            `json:"time_limit_minutes" gorm:"default:0"` // 0 means no limit
	Tags             datatypes.JSON `json:"tags"`
	IsPublic         bool           `json:"is_public" gorm:"default:true"`
	CreatedBy        uint           `json:"created_by" gorm:"index"`
	TotalQuestions   int            `json:"total_questions" gorm:"default:0"`
	Questions        []QuizQuestion `json:"questions" gorm:"foreignKey:QuizID"`
	IsDeleted        bool           `json:"is_deleted" gorm:"default:false"`
}

// QuizQuestion links a quiz to a question at a position
type QuizQuestion struct {
	gorm.Model
	QuizID     uint `json:"quiz_id" gorm:"index;not null"`
	QuestionID uint `json:"question_id" gorm:"index;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}
