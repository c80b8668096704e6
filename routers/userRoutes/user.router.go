package userRoutes

import (
	userControllers "github.com/RyanYahya/NarraPrep/controllers/user"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	userValidators "github.com/RyanYahya/NarraPrep/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes mounts user management under the API prefix
func SetupUserRoutes(api fiber.Router) {
	userGroup := api.Group("/users")

	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequirePermission(models.OpUserList), userControllers.GetUsers)
	userGroup.Get("/me", middleware.JWTMiddleware, userControllers.GetMe)
	userGroup.Put("/me", middleware.JWTMiddleware, userValidators.UpdateMe(), userControllers.UpdateMe)
	userGroup.Get("/:id", middleware.JWTMiddleware, userValidators.UserID(), userControllers.GetUser)
	userGroup.Post("/", middleware.JWTMiddleware, middleware.RequirePermission(models.OpUserCreate), userValidators.CreateUser(), userControllers.CreateUser)
}
