package questionValidator

import (
	"strings"

	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
)

// validateOptions enforces the option invariants: at least two options and
// exactly one marked correct.
func validateOptions(options []models.OptionPayload, errors map[string]string) {
	if len(options) < 2 {
		errors["options"] = "A question needs at least 2 options!"
		return
	}

	correctCount := 0
	for i := range options {
		if strings.TrimSpace(options[i].Content) == "" {
			errors["options"] = "Every option needs content!"
			return
		}
		if options[i].IsCorrect {
			correctCount++
		}
	}

	if correctCount != 1 {
		errors["options"] = "Exactly one option must be marked correct!"
	}
}

// CreateQuestion validates a question create/update payload
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.QuestionCreate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Text = strings.TrimSpace(reqData.Text)
		if reqData.Category == "" {
			reqData.Category = models.CategoryGeneral
		}
		if reqData.Difficulty == "" {
			reqData.Difficulty = models.DifficultyMedium
		}

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		validateOptions(reqData.Options, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// QuestionID validates the :id path parameter
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Question ID must be a positive number!"})
		}

		c.Locals("questionID", id)
		return c.Next()
	}
}

// QuestionList validates listing filters
func QuestionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.QuestionListQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != "" && !contains(models.Categories(), reqData.Category) {
			errors["category"] = "Unknown category!"
		}
		if reqData.Difficulty != "" && !contains(models.Difficulties(), reqData.Difficulty) {
			errors["difficulty"] = "Unknown difficulty!"
		}
		if reqData.Page < 0 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 0 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Page == 0 {
			reqData.Page = 1
		}
		if reqData.Limit == 0 {
			reqData.Limit = 20
		}

		c.Locals("validatedQuestionList", reqData)
		return c.Next()
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
