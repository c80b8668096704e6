package platformRoutes

import (
	platformControllers "github.com/RyanYahya/NarraPrep/controllers/platform"

	"github.com/gofiber/fiber/v2"
)

// SetupPlatformRoutes mounts health and client config under the API prefix.
// These routes are unauthenticated: the dashboard calls /config before any
// session exists.
func SetupPlatformRoutes(api fiber.Router) {
	api.Get("/health", platformControllers.HealthCheck)
	api.Get("/health/db", platformControllers.DbHealth)
	api.Get("/config", platformControllers.GetClientConfig)
}
