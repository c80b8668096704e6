package attemptValidator

import (
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAttempt validates an attempt start payload
func CreateAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.AttemptCreate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// UpdateAttempt validates an answer submission payload
func UpdateAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.AttemptUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		// Reject duplicate answers for the same question within one submission
		seen := make(map[uint]bool)
		for _, answer := range reqData.Answers {
			if seen[answer.QuestionID] {
				errors["answers"] = "Duplicate answer for the same question!"
				break
			}
			seen[answer.QuestionID] = true
		}

		if len(reqData.Answers) == 0 && len(reqData.ReviewLater) == 0 && !reqData.Complete {
			errors["payload"] = "Nothing to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttemptUpdate", reqData)
		return c.Next()
	}
}

// AttemptID validates the :id path parameter
func AttemptID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Attempt ID must be a positive number!"})
		}

		c.Locals("attemptID", id)
		return c.Next()
	}
}
