package middleware

import (
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequirePermission returns a middleware that checks the caller's role
// against the policy table before the handler runs. Denial happens before
// any state mutation.
func RequirePermission(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		var permission models.Permission
		err := database.Database.Db.Where("role = ? AND operation = ?", user.Role, operation).First(&permission).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
		}

		// Handlers down the chain reuse the loaded user
		c.Locals("authUser", user)
		return c.Next()
	}
}
