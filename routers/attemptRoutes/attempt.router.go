package attemptRoutes

import (
	attemptControllers "github.com/RyanYahya/NarraPrep/controllers/attempt"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	attemptValidators "github.com/RyanYahya/NarraPrep/validators/attempt"
	quizValidators "github.com/RyanYahya/NarraPrep/validators/quiz"
	userValidators "github.com/RyanYahya/NarraPrep/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupAttemptRoutes mounts attempt operations under the API prefix
func SetupAttemptRoutes(api fiber.Router) {
	attemptGroup := api.Group("/attempts")

	attemptGroup.Get("/user/:id", middleware.JWTMiddleware, userValidators.UserID(), attemptControllers.GetUserAttempts)
	attemptGroup.Get("/quiz/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpDashboardView), quizValidators.QuizID(), attemptControllers.GetQuizAttempts)
	attemptGroup.Get("/:id", middleware.JWTMiddleware, attemptValidators.AttemptID(), attemptControllers.GetAttempt)

	attemptGroup.Post("/", middleware.JWTMiddleware, middleware.RequirePermission(models.OpAttemptCreate), attemptValidators.CreateAttempt(), attemptControllers.StartAttempt)
	attemptGroup.Patch("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpAttemptUpdate), attemptValidators.AttemptID(), attemptValidators.UpdateAttempt(), attemptControllers.UpdateAttempt)
	attemptGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpAttemptDelete), attemptValidators.AttemptID(), attemptControllers.DeleteAttempt)
}
