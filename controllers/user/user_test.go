package userController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	userRoutes "github.com/RyanYahya/NarraPrep/routers/userRoutes"

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
	userRoutes.SetupUserRoutes(api)

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

func TestListUsersAdminOnly(t *testing.T) {
	_, adminToken := createTestUser(t, models.RoleAdmin, "admin-list@example.com")
	_, studentToken := createTestUser(t, models.RoleStudent, "student-list@example.com")

	code, body := doJSON(t, "GET", "/api/v1/users", adminToken, nil)
	require.Equal(t, fiber.StatusOK, code)

	users := body["data"].([]interface{})
	require.NotEmpty(t, users)
	for _, u := range users {
		_, exposed := u.(map[string]interface{})["password"]
		assert.False(t, exposed, "password must never leave the API")
	}

	code, _ = doJSON(t, "GET", "/api/v1/users", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestGetMe(t *testing.T) {
	user, token := createTestUser(t, models.RoleStudent, "student-me@example.com")

	code, body := doJSON(t, "GET", "/api/v1/users/me", token, nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, user.Email, data["email"])
	assert.Equal(t, models.RoleStudent, data["role"])
	_, exposed := data["password"]
	assert.False(t, exposed)
}

func TestAdminCreateUser(t *testing.T) {
	_, adminToken := createTestUser(t, models.RoleAdmin, "admin-create-user@example.com")

	code, body := doJSON(t, "POST", "/api/v1/users", adminToken, map[string]interface{}{
		"name":     "New Admin",
		"email":    "second-admin@example.com",
		"password": "supersecret1",
		"role":     models.RoleAdmin,
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, models.RoleAdmin, data["role"])

	// Same email again conflicts
	code, _ = doJSON(t, "POST", "/api/v1/users", adminToken, map[string]interface{}{
		"name":     "New Admin",
		"email":    "second-admin@example.com",
		"password": "supersecret1",
		"role":     models.RoleAdmin,
	})
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestCreateUserForbiddenForStudents(t *testing.T) {
	_, studentToken := createTestUser(t, models.RoleStudent, "student-create-user@example.com")

	code, _ := doJSON(t, "POST", "/api/v1/users", studentToken, map[string]interface{}{
		"name":     "Sneaky",
		"email":    "sneaky@example.com",
		"password": "supersecret1",
		"role":     models.RoleAdmin,
	})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestUpdateMeCannotTouchRole(t *testing.T) {
	user, token := createTestUser(t, models.RoleStudent, "student-updateme@example.com")

	code, body := doJSON(t, "PUT", "/api/v1/users/me", token, map[string]interface{}{
		"name": "Renamed Student",
		"settings": map[string]interface{}{
			"daily_goal": 25,
			"theme":      "dark",
		},
	})
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Renamed Student", data["name"])
	assert.Equal(t, models.RoleStudent, data["role"])

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, user.ID).Error)

	var settings models.UserSettings
	require.NoError(t, json.Unmarshal(updated.Settings, &settings))
	assert.Equal(t, 25, settings.DailyGoal)
	assert.Equal(t, "dark", settings.Theme)
}
