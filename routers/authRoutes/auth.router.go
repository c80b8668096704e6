package authRoutes

import (
	authControllers "github.com/RyanYahya/NarraPrep/controllers/auth"
	authValidators "github.com/RyanYahya/NarraPrep/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes mounts signup and login under the API prefix
func SetupAuthRoutes(api fiber.Router) {
	authGroup := api.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
