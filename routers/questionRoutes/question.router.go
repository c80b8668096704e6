package questionRoutes

import (
	questionControllers "github.com/RyanYahya/NarraPrep/controllers/question"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	questionValidators "github.com/RyanYahya/NarraPrep/validators/question"

	"github.com/gofiber/fiber/v2"
)

// SetupQuestionRoutes mounts question CRUD under the API prefix
func SetupQuestionRoutes(api fiber.Router) {
	questionGroup := api.Group("/questions")

	questionGroup.Get("/", middleware.JWTMiddleware, questionValidators.QuestionList(), questionControllers.GetQuestions)
	questionGroup.Get("/:id", middleware.JWTMiddleware, questionValidators.QuestionID(), questionControllers.GetQuestion)

	questionGroup.Post("/", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuestionCreate), questionValidators.CreateQuestion(), questionControllers.CreateQuestion)
	questionGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuestionUpdate), questionValidators.QuestionID(), questionValidators.CreateQuestion(), questionControllers.UpdateQuestion)
	questionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequirePermission(models.OpQuestionDelete), questionValidators.QuestionID(), questionControllers.DeleteQuestion)
}
