package handler

import "github.com/gofiber/fiber/v2"

// Logout - token JWT stateless, client cukup buang token
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout berhasil",
	})
}
