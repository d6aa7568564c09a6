package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umer837/ConnectPro/models"
)

// RequireRole restricts a route to the given role allow-list. Ownership
// checks (e.g. "provider owns this service") stay inside the handlers.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You don't have permission to perform this action",
		})
	}
}
