package quizRoutes

import (
	quizControllers "github.com/RyanYahya/NarraPrep/controllers/quiz"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	quizValidators "github.com/RyanYahya/NarraPrep/validators/quiz"
	userValidators "github.com/RyanYahya/NarraPrep/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes mounts quiz CRUD under the API prefix
func SetupQuizRoutes(api fiber.Router) {
	quizGroup := api.Group("/quizzes")

	quizGroup.Get("/", middleware.JWTMiddleware, quizValidators.QuizList(), quizControllers.GetQuizzes)
	quizGroup.Get("/user/:id", middleware.JWTMiddleware, userValidators.UserID(), quizControllers.GetUserQuizzes)
	quizGroup.Get("/:id", middleware.JWTMiddleware, quizValidators.QuizID(), quizControllers.GetQuiz)

	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuizCreate), quizValidators.CreateQuiz(), quizControllers.CreateQuiz)
	quizGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuizUpdate), quizValidators.QuizID(), quizValidators.UpdateQuiz(), quizControllers.UpdateQuiz)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuizDelete), quizValidators.QuizID(), quizControllers.DeleteQuiz)
}
