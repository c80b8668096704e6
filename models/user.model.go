package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string    `json:"profile_image" gorm:"default:''"`
	Name         string    `json:"name" gorm:"default:''"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Role         string    `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Password     string    `json:"password,omitempty" gorm:"not null"`
	AuthSubject  string    `json:"auth_subject"` // token subject at the external identity provider
	LastLogin    time.Time `json:"last_login" gorm:"default:NULL"`

	// Gamification stats, updated when an attempt is finalized
	TotalQuestionsAttempted int     `json:"total_questions_attempted" gorm:"default:0"`
	CorrectAnswers          int     `json:"correct_answers" gorm:"default:0"`
	Accuracy                float64 `json:"accuracy" gorm:"default:0"`
	Streak                  int     `json:"streak" gorm:"default:0"`
	LongestStreak           int     `json:"longest_streak" gorm:"default:0"`
	XP                      int     `json:"xp" gorm:"default:0"`
	Level                   int     `json:"level" gorm:"default:1"`

	// Per-category accuracy, keyed by question category
	CategoryStats datatypes.JSON `json:"category_stats"`
	Settings      datatypes.JSON `json:"settings"`

	IsDeleted bool `json:"is_deleted" gorm:"default:false"`
}

// CategoryStat is the per-category entry stored inside User.CategoryStats
type CategoryStat struct {
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// UserSettings is the document stored inside User.Settings
type UserSettings struct {
	DailyGoal               int               `json:"daily_goal"`
	Theme                   string            `json:"theme"`
	NotificationPreferences map[string]string `json:"notification_preferences"`
}

// DefaultUserSettings returns the settings assigned to new accounts
func DefaultUserSettings() UserSettings {
	return UserSettings{
		DailyGoal:               10,
		Theme:                   "light",
		NotificationPreferences: map[string]string{},
	}
}
