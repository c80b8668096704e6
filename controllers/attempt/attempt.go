package attemptController

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartAttempt creates an in-progress attempt for a quiz
func StartAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttempt").(*models.AttemptCreate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", reqData.QuizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !quiz.IsPublic && quiz.CreatedBy != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to attempt this quiz!", nil)
	}

	answersJSON, _ := json.Marshal([]models.AttemptAnswer{})
	reviewJSON, _ := json.Marshal([]uint{})

	attempt := models.QuizAttempt{
		Reference:   uuid.NewString(),
		QuizID:      quiz.ID,
		UserID:      userID,
		Status:      models.AttemptInProgress,
		Answers:     answersJSON,
		ReviewLater: reviewJSON,
		StartedAt:   time.Now(),
		MaxScore:    quiz.TotalQuestions,
	}

	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving attempt to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt started!", attempt)
}

// UpdateAttempt records answers and review-later marks, and optionally
// finalizes the attempt. Correctness is computed here against the stored
// correct option, never taken from the client. A completed attempt rejects
// any further update.
func UpdateAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	attemptID := c.Locals("attemptID").(int)

	reqData, ok := c.Locals("validatedAttemptUpdate").(*models.AttemptUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var attempt models.QuizAttempt
	if err := db.Where("id = ?", attemptID).First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attempt not found!", nil)
	}

	if attempt.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to update this attempt!", nil)
	}

	if attempt.Status == models.AttemptCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attempt is already finalized!", nil)
	}

	// Question membership of the quiz, used to reject stray answers
	var quizQuestions []models.QuizQuestion
	db.Where("quiz_id = ?", attempt.QuizID).Find(&quizQuestions)

	inQuiz := make(map[uint]bool, len(quizQuestions))
	for _, qq := range quizQuestions {
		inQuiz[qq.QuestionID] = true
	}

	var recorded []models.AttemptAnswer
	if err := json.Unmarshal(attempt.Answers, &recorded); err != nil {
		recorded = nil
	}

	answered := make(map[uint]int, len(recorded))
	for i, ans := range recorded {
		answered[ans.QuestionID] = i
	}

	for _, answer := range reqData.Answers {
		if !inQuiz[answer.QuestionID] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answer references a question outside this quiz!", nil)
		}

		var option models.QuestionOption
		if err := db.Where("id = ? AND question_id = ?", answer.SelectedOptionID, answer.QuestionID).First(&option).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answer references an unknown option!", nil)
		}

		entry := models.AttemptAnswer{
			QuestionID:       answer.QuestionID,
			SelectedOptionID: answer.SelectedOptionID,
			IsCorrect:        option.IsCorrect,
			TimeTakenSeconds: answer.TimeTakenSeconds,
		}

		// Re-answering a question replaces the earlier answer
		if i, exists := answered[answer.QuestionID]; exists {
			recorded[i] = entry
		} else {
			answered[answer.QuestionID] = len(recorded)
			recorded = append(recorded, entry)
		}
	}

	answersJSON, _ := json.Marshal(recorded)
	attempt.Answers = answersJSON

	if reqData.ReviewLater != nil {
		for _, questionID := range reqData.ReviewLater {
			if !inQuiz[questionID] {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Review mark references a question outside this quiz!", nil)
			}
		}
		reviewJSON, _ := json.Marshal(reqData.ReviewLater)
		attempt.ReviewLater = reviewJSON
	}

	if reqData.Complete {
		finalizeAttempt(db, &attempt, recorded)
	}

	if err := db.Save(&attempt).Error; err != nil {
		log.Printf("Error updating attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt updated!", attempt)
}

// finalizeAttempt locks the attempt and computes the score:
// score = correct answers, percentage = score/max*100 rounded to 2dp.
func finalizeAttempt(db *gorm.DB, attempt *models.QuizAttempt, answers []models.AttemptAnswer) {
	correct := 0
	for _, ans := range answers {
		if ans.IsCorrect {
			correct++
		}
	}

	now := time.Now()
	attempt.Status = models.AttemptCompleted
	attempt.CompletedAt = &now
	attempt.TimeTakenSeconds = int(now.Sub(attempt.StartedAt).Seconds())
	attempt.Score = correct
	if attempt.MaxScore > 0 {
		attempt.Percentage = math.Round(float64(correct)/float64(attempt.MaxScore)*10000) / 100
	}

	applyAnswerStats(db, attempt.UserID, answers)
}

// applyAnswerStats folds finalized answers into the user's gamification
// stats: totals, accuracy, per-category accuracy, xp and level.
func applyAnswerStats(db *gorm.DB, userID uint, answers []models.AttemptAnswer) {
	if len(answers) == 0 {
		return
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		log.Printf("Error loading user for stats update: %v", err)
		return
	}

	categoryStats := make(map[string]models.CategoryStat)
	if len(user.CategoryStats) > 0 {
		if err := json.Unmarshal(user.CategoryStats, &categoryStats); err != nil {
			categoryStats = make(map[string]models.CategoryStat)
		}
	}

	for _, ans := range answers {
		var question models.Question
		if err := db.Where("id = ?", ans.QuestionID).First(&question).Error; err != nil {
			continue
		}

		user.TotalQuestionsAttempted++
		if ans.IsCorrect {
			user.CorrectAnswers++
			user.Streak++
			if user.Streak > user.LongestStreak {
				user.LongestStreak = user.Streak
			}
			user.XP += 10
		} else {
			user.Streak = 0
		}

		stat := categoryStats[question.Category]
		stat.Attempted++
		if ans.IsCorrect {
			stat.Correct++
		}
		stat.Accuracy = math.Round(float64(stat.Correct)/float64(stat.Attempted)*10000) / 100
		categoryStats[question.Category] = stat
	}

	if user.TotalQuestionsAttempted > 0 {
		user.Accuracy = math.Round(float64(user.CorrectAnswers)/float64(user.TotalQuestionsAttempted)*10000) / 100
	}
	user.Level = user.XP/100 + 1

	statsJSON, _ := json.Marshal(categoryStats)
	user.CategoryStats = statsJSON

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving user stats: %v", err)
	}
}

// GetAttempt returns an attempt by ID. Owner or admin only.
func GetAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	attemptID := c.Locals("attemptID").(int)

	var attempt models.QuizAttempt
	if err := database.Database.Db.Where("id = ?", attemptID).First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attempt not found!", nil)
	}

	if attempt.UserID != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to view this attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt fetched successfully!", attempt)
}

// GetUserAttempts lists attempts of a user, most recent first. Self or admin.
func GetUserAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	targetID := c.Locals("targetUserID").(int)

	if uint(targetID) != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to view these attempts!", nil)
	}

	var attempts []models.QuizAttempt
	if err := database.Database.Db.Where("user_id = ?", targetID).Order("started_at desc").Find(&attempts).Error; err != nil {
		log.Printf("Error fetching attempts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}

// GetQuizAttempts lists attempts for a quiz, most recent first. Admin only,
// enforced by the permission middleware on the route.
func GetQuizAttempts(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var attempts []models.QuizAttempt
	if err := database.Database.Db.Where("quiz_id = ?", quizID).Order("started_at desc").Find(&attempts).Error; err != nil {
		log.Printf("Error fetching attempts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}

// DeleteAttempt removes an in-progress attempt. Finalized attempts are
// immutable and cannot be deleted.
func DeleteAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	attemptID := c.Locals("attemptID").(int)

	db := database.Database.Db

	var attempt models.QuizAttempt
	if err := db.Where("id = ?", attemptID).First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attempt not found!", nil)
	}

	if attempt.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to delete this attempt!", nil)
	}

	if attempt.Status == models.AttemptCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Finalized attempts cannot be deleted!", nil)
	}

	if err := db.Delete(&attempt).Error; err != nil {
		log.Printf("Error deleting attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt deleted successfully!", nil)
}
