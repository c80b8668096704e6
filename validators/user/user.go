package userValidator

import (
	"strings"

	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser validates the admin user creation payload
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UserCreate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// UpdateMe validates the self-service profile update payload
func UpdateMe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UserUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		if reqData.Name == nil && reqData.ProfileImage == nil && reqData.Settings == nil {
			errors["payload"] = "Nothing to update!"
		}
		if reqData.Settings != nil && reqData.Settings.DailyGoal < 0 {
			errors["settings"] = "Daily goal must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

// UserID validates the :id path parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "User ID must be a positive number!"})
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}
