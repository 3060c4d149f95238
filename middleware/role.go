package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole checks the role set by Protected. Admins pass every gate.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if role != roleName && role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}
