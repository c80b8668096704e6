package quizController

import (
	"encoding/json"
	"log"

	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// missingQuestionIDs returns the referenced question IDs that do not exist
// or have been deleted. Nothing is persisted when any reference is dangling.
func missingQuestionIDs(db *gorm.DB, refs []models.QuizQuestionRef) []uint {
	ids := make([]uint, len(refs))
	for i, ref := range refs {
		ids[i] = ref.QuestionID
	}

	var existing []models.Question
	db.Select("id").Where("id IN ? AND is_deleted = ?", ids, false).Find(&existing)

	found := make(map[uint]bool, len(existing))
	for _, q := range existing {
		found[q.ID] = true
	}

	var missing []uint
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// CreateQuiz persists a new quiz after verifying every referenced question
func CreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*models.QuizCreate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if missing := missingQuestionIDs(db, reqData.Questions); len(missing) > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz references unknown questions!", fiber.Map{
			"missing_question_ids": missing,
		})
	}

	tagsJSON, _ := json.Marshal(reqData.Tags)

	isPublic := true
	if reqData.IsPublic != nil {
		isPublic = *reqData.IsPublic
	}

	quiz := models.Quiz{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Category:         reqData.Category,
		Difficulty:       reqData.Difficulty,
		TimeLimitMinutes: reqData.TimeLimitMinutes,
		Tags:             tagsJSON,
		IsPublic:         isPublic,
		CreatedBy:        userID,
		TotalQuestions:   len(reqData.Questions),
	}

	for i, ref := range reqData.Questions {
		orderIndex := ref.OrderIndex
		if orderIndex == 0 {
			orderIndex = i
		}
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			QuestionID: ref.QuestionID,
			OrderIndex: orderIndex,
		})
	}

	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error saving quiz to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetQuizzes lists quizzes visible to the caller: public ones plus their own
// private ones. Admins see everything.
func GetQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, _ := c.Locals("validatedQuizList").(*models.QuizListQuery)
	if reqData == nil {
		reqData = &models.QuizListQuery{Page: 1, Limit: 20}
	}

	db := database.Database.Db.Model(&models.Quiz{}).Where("is_deleted = ?", false)

	if user.Role != models.RoleAdmin {
		db = db.Where("is_public = ? OR created_by = ?", true, userID)
	}
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Difficulty != "" {
		db = db.Where("difficulty = ?", reqData.Difficulty)
	}
	if reqData.Tag != "" {
		db = db.Where("tags LIKE ?", "%\""+reqData.Tag+"\"%")
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var quizzes []models.Quiz
	if err := db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Order("id asc").Offset(offset).Limit(reqData.Limit).Find(&quizzes).Error; err != nil {
		log.Printf("Error fetching quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
		"total":   total,
		"page":    reqData.Page,
		"limit":   reqData.Limit,
	})
}

// GetQuiz returns a quiz by ID. Private quizzes are visible to the owner and
// admins only.
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if !quiz.IsPublic && quiz.CreatedBy != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to view this quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// GetUserQuizzes lists quizzes created by a specific user. Private quizzes
// show up only when the caller is that user or an admin.
func GetUserQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db.Where("created_by = ? AND is_deleted = ?", targetID, false)

	if uint(targetID) != userID && user.Role != models.RoleAdmin {
		db = db.Where("is_public = ?", true)
	}

	var quizzes []models.Quiz
	if err := db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Order("id asc").Find(&quizzes).Error; err != nil {
		log.Printf("Error fetching user quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// UpdateQuiz updates quiz fields. Owner or admin only.
func UpdateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizUpdate").(*models.QuizUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.CreatedBy != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to update this quiz!", nil)
	}

	if reqData.Questions != nil {
		if missing := missingQuestionIDs(db, reqData.Questions); len(missing) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz references unknown questions!", fiber.Map{
				"missing_question_ids": missing,
			})
		}

		if err := db.Where("quiz_id = ?", quiz.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
			log.Printf("Error clearing quiz questions: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
		}

		quiz.Questions = nil
		for i, ref := range reqData.Questions {
			orderIndex := ref.OrderIndex
			if orderIndex == 0 {
				orderIndex = i
			}
			quiz.Questions = append(quiz.Questions, models.QuizQuestion{
				QuizID:     quiz.ID,
				QuestionID: ref.QuestionID,
				OrderIndex: orderIndex,
			})
		}
		quiz.TotalQuestions = len(reqData.Questions)
	}

	if reqData.Title != nil {
		quiz.Title = *reqData.Title
	}
	if reqData.Description != nil {
		quiz.Description = *reqData.Description
	}
	if reqData.Category != nil {
		quiz.Category = *reqData.Category
	}
	if reqData.Difficulty != nil {
		quiz.Difficulty = *reqData.Difficulty
	}
	if reqData.TimeLimitMinutes != nil {
		quiz.TimeLimitMinutes = *reqData.TimeLimitMinutes
	}
	if reqData.Tags != nil {
		tagsJSON, _ := json.Marshal(reqData.Tags)
		quiz.Tags = tagsJSON
	}
	if reqData.IsPublic != nil {
		quiz.IsPublic = *reqData.IsPublic
	}

	if err := db.Save(&quiz).Error; err != nil {
		log.Printf("Error updating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz soft deletes a quiz. Owner or admin only.
func DeleteQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.CreatedBy != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to delete this quiz!", nil)
	}

	quiz.IsDeleted = true
	if err := db.Save(&quiz).Error; err != nil {
		log.Printf("Error deleting quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}
