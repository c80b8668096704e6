package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/models"
	authRoutes "github.com/RyanYahya/NarraPrep/routers/authRoutes"

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
	authRoutes.SetupAuthRoutes(api)

	os.Exit(m.Run())
}

func doJSON(t *testing.T, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestSignupAndLogin(t *testing.T) {
	code, body := doJSON(t, "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Aisha",
		"email":    "aisha@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, fiber.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, models.RoleStudent, data["role"])
	_, exposed := data["password"]
	assert.False(t, exposed, "password must never leave the API")

	// New accounts start with default settings and empty stats
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "aisha@example.com").First(&user).Error)
	assert.NotEqual(t, "supersecret1", user.Password, "password must be stored hashed")
	assert.NotEmpty(t, user.AuthSubject)

	var settings models.UserSettings
	require.NoError(t, json.Unmarshal(user.Settings, &settings))
	assert.Equal(t, 10, settings.DailyGoal)

	code, body = doJSON(t, "/api/v1/auth/login", map[string]interface{}{
		"email":    "aisha@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, fiber.StatusOK, code)

	data = body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	payload := map[string]interface{}{
		"name":     "Omar",
		"email":    "omar@example.com",
		"password": "supersecret1",
	}

	code, _ := doJSON(t, "/api/v1/auth/signup", payload)
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = doJSON(t, "/api/v1/auth/signup", payload)
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestSignupEmailNormalized(t *testing.T) {
	code, _ := doJSON(t, "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Lina",
		"email":    "  LINA@Example.COM ",
		"password": "supersecret1",
	})
	require.Equal(t, fiber.StatusCreated, code)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "lina@example.com").First(&user).Error)
}

func TestLoginWrongPassword(t *testing.T) {
	code, _ := doJSON(t, "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Yusuf",
		"email":    "yusuf@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = doJSON(t, "/api/v1/auth/login", map[string]interface{}{
		"email":    "yusuf@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestSignupValidation(t *testing.T) {
	code, _ := doJSON(t, "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Nora",
		"email":    "not-an-email",
		"password": "supersecret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doJSON(t, "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Nora",
		"email":    "nora@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
}
