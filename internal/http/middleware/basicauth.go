package middleware

import (
	"remitabeg-landing/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// BasicAuth guards machine endpoints such as the content export. With no
// credentials configured every request is rejected.
func BasicAuth() fiber.Handler {
	user := config.GetEnv("BASIC_AUTH_USER", "")
	pass := config.GetEnv("BASIC_AUTH_PASS", "")

	users := map[string]string{}
	if user != "" && pass != "" {
		users[user] = pass
	}

	return basicauth.New(basicauth.Config{
		Users: users,
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		},
	})
}
