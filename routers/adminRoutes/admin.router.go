package adminRoutes

import (
	adminControllers "github.com/RyanYahya/NarraPrep/controllers/admin"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes mounts the admin dashboard under the API prefix
func SetupAdminRoutes(api fiber.Router) {
	adminGroup := api.Group("/admin")

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequirePermission(models.OpDashboardView), adminControllers.GetDashboard)
}
