package quizController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	quizRoutes "github.com/RyanYahya/NarraPrep/routers/quizRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:    "testsecret",
		SaltRound: 4,
	}

	database.ConnectTestDb()

	app = fiber.New()
	api := app.Group("/api/v1")
	quizRoutes.SetupQuizRoutes(api)

	os.Exit(m.Run())
}

func createTestUser(t *testing.T, role, email string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     "Test " + role,
		Email:    email,
		Password: "not-used",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createQuestion(t *testing.T, text string) models.Question {
	t.Helper()

	question := models.Question{Text: text, Category: models.CategoryPhysiology}
	require.NoError(t, database.Database.Db.Create(&question).Error)

	options := []models.QuestionOption{
		{QuestionID: question.ID, Content: "Right", IsCorrect: true, OrderIndex: 0},
		{QuestionID: question.ID, Content: "Wrong", IsCorrect: false, OrderIndex: 1},
	}
	require.NoError(t, database.Database.Db.Create(&options).Error)

	return question
}

func doJSON(t *testing.T, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body := bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestCreateQuizWithValidQuestions(t *testing.T) {
	_, token := createTestUser(t, models.RoleStudent, "student-quiz@example.com")

	q1 := createQuestion(t, "What hormone raises blood glucose between meals?")
	q2 := createQuestion(t, "Where does most nutrient absorption happen in the gut?")

	code, body := doJSON(t, "POST", "/api/v1/quizzes", token, map[string]interface{}{
		"title":      "Endocrine starter pack",
		"category":   "physiology",
		"difficulty": "easy",
		"questions": []map[string]interface{}{
			{"question_id": q1.ID},
			{"question_id": q2.ID},
		},
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_questions"])
	assert.Equal(t, true, data["is_public"])
}

func TestCreateQuizRejectsDanglingQuestionRef(t *testing.T) {
	_, token := createTestUser(t, models.RoleStudent, "student-dangling@example.com")

	q1 := createQuestion(t, "Which enzyme begins starch digestion in the mouth?")

	var before int64
	database.Database.Db.Model(&models.Quiz{}).Count(&before)

	code, body := doJSON(t, "POST", "/api/v1/quizzes", token, map[string]interface{}{
		"title":      "Broken quiz",
		"category":   "physiology",
		"difficulty": "easy",
		"questions": []map[string]interface{}{
			{"question_id": q1.ID},
			{"question_id": 999999},
		},
	})
	require.Equal(t, fiber.StatusBadRequest, code)

	data := body["data"].(map[string]interface{})
	missing := data["missing_question_ids"].([]interface{})
	require.Len(t, missing, 1)
	assert.Equal(t, float64(999999), missing[0])

	// Nothing persisted on failure
	var after int64
	database.Database.Db.Model(&models.Quiz{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestPrivateQuizVisibility(t *testing.T) {
	_, ownerToken := createTestUser(t, models.RoleStudent, "owner-private@example.com")
	_, otherToken := createTestUser(t, models.RoleStudent, "other-private@example.com")
	_, adminToken := createTestUser(t, models.RoleAdmin, "admin-private@example.com")

	q1 := createQuestion(t, "Which lobe of the brain hosts the primary visual cortex?")

	isPublic := false
	code, body := doJSON(t, "POST", "/api/v1/quizzes", ownerToken, map[string]interface{}{
		"title":      "My private notes quiz",
		"category":   "physiology",
		"difficulty": "medium",
		"is_public":  isPublic,
		"questions": []map[string]interface{}{
			{"question_id": q1.ID},
		},
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	quizID := uint(data["ID"].(float64))

	code, _ = doJSON(t, "GET", fmt.Sprintf("/api/v1/quizzes/%d", quizID), ownerToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, "GET", fmt.Sprintf("/api/v1/quizzes/%d", quizID), otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doJSON(t, "GET", fmt.Sprintf("/api/v1/quizzes/%d", quizID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestUpdateQuizOwnerOnly(t *testing.T) {
	_, ownerToken := createTestUser(t, models.RoleStudent, "owner-update@example.com")
	_, otherToken := createTestUser(t, models.RoleStudent, "other-update@example.com")

	q1 := createQuestion(t, "Which ion triggers neurotransmitter release at the synapse?")

	code, body := doJSON(t, "POST", "/api/v1/quizzes", ownerToken, map[string]interface{}{
		"title":      "Synapse quiz",
		"category":   "physiology",
		"difficulty": "hard",
		"questions": []map[string]interface{}{
			{"question_id": q1.ID},
		},
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	quizID := uint(data["ID"].(float64))

	code, _ = doJSON(t, "PUT", fmt.Sprintf("/api/v1/quizzes/%d", quizID), otherToken, map[string]interface{}{
		"title": "Hijacked title",
	})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body = doJSON(t, "PUT", fmt.Sprintf("/api/v1/quizzes/%d", quizID), ownerToken, map[string]interface{}{
		"title": "Synapse quiz, revised",
	})
	require.Equal(t, fiber.StatusOK, code)

	data = body["data"].(map[string]interface{})
	assert.Equal(t, "Synapse quiz, revised", data["title"])
}

func TestDeleteQuizHidesIt(t *testing.T) {
	_, token := createTestUser(t, models.RoleStudent, "student-delete-quiz@example.com")

	q1 := createQuestion(t, "Which vessel carries oxygenated blood from the lungs?")

	code, body := doJSON(t, "POST", "/api/v1/quizzes", token, map[string]interface{}{
		"title":      "Pulmonary quiz",
		"category":   "physiology",
		"difficulty": "easy",
		"questions": []map[string]interface{}{
			{"question_id": q1.ID},
		},
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	quizID := uint(data["ID"].(float64))

	code, _ = doJSON(t, "DELETE", fmt.Sprintf("/api/v1/quizzes/%d", quizID), token, nil)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, "GET", fmt.Sprintf("/api/v1/quizzes/%d", quizID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
