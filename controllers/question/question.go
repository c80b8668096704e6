package questionController

import (
	"encoding/json"
	"log"

	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetQuestions lists questions with optional category/difficulty/tag filters.
// Results come back in creation order.
func GetQuestions(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedQuestionList").(*models.QuestionListQuery)
	if reqData == nil {
		reqData = &models.QuestionListQuery{Page: 1, Limit: 20}
	}

	db := database.Database.Db.Model(&models.Question{}).Where("is_deleted = ?", false)

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Difficulty != "" {
		db = db.Where("difficulty = ?", reqData.Difficulty)
	}
	if reqData.Tag != "" {
		// Tags live in a JSON array column; substring match keeps the query
		// portable between Postgres and SQLite
		db = db.Where("tags LIKE ?", "%\""+reqData.Tag+"\"%")
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var questions []models.Question
	if err := db.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index asc")
	}).Order("id asc").Offset(offset).Limit(reqData.Limit).Find(&questions).Error; err != nil {
		log.Printf("Error fetching questions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"questions": questions,
		"total":     total,
		"page":      reqData.Page,
		"limit":     reqData.Limit,
	})
}

// GetQuestion returns a single question by ID
func GetQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully!", question)
}

// CreateQuestion persists a new question with its options
func CreateQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*models.QuestionCreate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tagsJSON, _ := json.Marshal(reqData.Tags)

	question := models.Question{
		Text:        reqData.Text,
		Explanation: reqData.Explanation,
		Category:    reqData.Category,
		Difficulty:  reqData.Difficulty,
		Tags:        tagsJSON,
		CreatedBy:   userID,
	}

	for i, opt := range reqData.Options {
		optionType := opt.OptionType
		if optionType == "" {
			optionType = models.OptionTypeText
		}
		question.Options = append(question.Options, models.QuestionOption{
			Content:    opt.Content,
			OptionType: optionType,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i,
		})
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		log.Printf("Error saving question to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion replaces a question's fields and options
func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	reqData, ok := c.Locals("validatedQuestion").(*models.QuestionCreate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	tagsJSON, _ := json.Marshal(reqData.Tags)

	question.Text = reqData.Text
	question.Explanation = reqData.Explanation
	question.Category = reqData.Category
	question.Difficulty = reqData.Difficulty
	question.Tags = tagsJSON

	// Options are replaced wholesale
	if err := db.Where("question_id = ?", question.ID).Delete(&models.QuestionOption{}).Error; err != nil {
		log.Printf("Error clearing question options: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	question.Options = nil
	for i, opt := range reqData.Options {
		optionType := opt.OptionType
		if optionType == "" {
			optionType = models.OptionTypeText
		}
		question.Options = append(question.Options, models.QuestionOption{
			QuestionID: question.ID,
			Content:    opt.Content,
			OptionType: optionType,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i,
		})
	}

	if err := db.Save(&question).Error; err != nil {
		log.Printf("Error updating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion soft deletes a question
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	db := database.Database.Db

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := db.Save(&question).Error; err != nil {
		log.Printf("Error deleting question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
