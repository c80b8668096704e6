package adminController

import (
	"log"

	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboard returns platform counters for the admin dashboard
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalQuestions, totalQuizzes, totalAttempts int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Question{}).Where("is_deleted = ?", false).Count(&totalQuestions)
	db.Model(&models.Quiz{}).Where("is_deleted = ?", false).Count(&totalQuizzes)
	db.Model(&models.QuizAttempt{}).Count(&totalAttempts)

	today := now.BeginningOfDay()

	var attemptsToday, completedToday, signupsToday int64
	db.Model(&models.QuizAttempt{}).Where("started_at >= ?", today).Count(&attemptsToday)
	db.Model(&models.QuizAttempt{}).Where("status = ? AND completed_at >= ?", models.AttemptCompleted, today).Count(&completedToday)
	db.Model(&models.User{}).Where("created_at >= ?", today).Count(&signupsToday)

	// Per-category question counts
	type categoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	var questionsByCategory []categoryCount
	if err := db.Model(&models.Question{}).
		Select("category, count(*) as count").
		Where("is_deleted = ?", false).
		Group("category").
		Scan(&questionsByCategory).Error; err != nil {
		log.Printf("Error fetching category counts: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_users":           totalUsers,
		"total_questions":       totalQuestions,
		"total_quizzes":         totalQuizzes,
		"total_attempts":        totalAttempts,
		"attempts_today":        attemptsToday,
		"completed_today":       completedToday,
		"signups_today":         signupsToday,
		"questions_by_category": questionsByCategory,
	})
}
