package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mockmate/interview-prep/internal/services"
)

// RequireAuth gates a route on a valid accessToken cookie. Claims are stored
// in the request locals for handlers that need the caller's identity.
func RequireAuth(tokens services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("accessToken")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: No token provided",
			})
		}

		claims, err := tokens.Verify(services.AccessToken, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid or expired token",
			})
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
