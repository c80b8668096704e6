package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question categories
const (
	CategoryAnatomy      = "anatomy"
	CategoryPhysiology   = "physiology"
	CategoryPathology    = "pathology"
	CategoryPharmacology = "pharmacology"
	CategoryMicrobiology = "microbiology"
	CategoryGeneral      = "general"
)

// Question difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question option types
const (
	OptionTypeText  = "text"
	OptionTypeImage = "image"
)

// Categories lists every valid question category
func Categories() []string {
	return []string{
		CategoryAnatomy,
		CategoryPhysiology,
		CategoryPathology,
		CategoryPharmacology,
		CategoryMicrobiology,
		CategoryGeneral,
	}
}

// Difficulties lists every valid difficulty level
func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Question represents a single medical MCQ item
type Question struct {
	gorm.Model
	Text        string           `json:"text" gorm:"not null"`
	Explanation string           `json:"explanation"`
	Category    string           `json:"category" gorm:"index;default:'general'"`
	Difficulty  string           `json:"difficulty" gorm:"index;default:'medium'"`
	Tags        datatypes.JSON   `json:"tags"`
	Options     []QuestionOption `json:"options" gorm:"foreignKey:QuestionID"`
	CreatedBy   uint             `json:"created_by"`
	IsDeleted   bool             `json:"is_deleted" gorm:"default:false"`
}

// QuestionOption represents an answer option of a question.
// Exactly one option per question carries IsCorrect.
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Content    string `json:"content"`
	OptionType string `json:"option_type" gorm:"default:'text'"` // text, image
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
