package platformController_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	platformRoutes "github.com/RyanYahya/NarraPrep/routers/platformRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:     "testsecret",
		APIBaseURL: "http://localhost:3000",
	}

	database.ConnectTestDb()

	app = fiber.New()
	api := app.Group("/api/v1")
	platformRoutes.SetupPlatformRoutes(api)

	os.Exit(m.Run())
}

func get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestHealthCheck(t *testing.T) {
	code, body := get(t, "/api/v1/health")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "healthy", body["message"])
}

func TestDbHealth(t *testing.T) {
	code, body := get(t, "/api/v1/health/db")
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "connected", data["database"])
}

func TestClientConfig(t *testing.T) {
	code, body := get(t, "/api/v1/config")
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "http://localhost:3000", data["api_base_url"])
	assert.Equal(t, "NarraPrep", data["project_name"])
}
