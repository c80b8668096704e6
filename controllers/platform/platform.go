package platformController

import (
	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck verifies the API is running
func HealthCheck(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "healthy", fiber.Map{
		"service": "NarraPrep API",
	})
}

// DbHealth verifies the database connection is working
func DbHealth(c *fiber.Ctx) error {
	sqlDB, err := database.Database.Db.DB()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "unhealthy", fiber.Map{
			"database": "not connected",
		})
	}

	if err := sqlDB.Ping(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "unhealthy", fiber.Map{
			"database": "not connected",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "healthy", fiber.Map{
		"database": "connected",
	})
}

// GetClientConfig returns the externally facing configuration the dashboard
// needs to bootstrap a session. Only public values belong here.
func GetClientConfig(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Config fetched successfully!", fiber.Map{
		"api_base_url":      config.AppConfig.APIBaseURL,
		"auth_provider_url": config.AppConfig.AuthProviderURL,
		"project_name":      "NarraPrep",
	})
}
