package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/pkg/utils/jwt"
)

// AuthMiddleware validates the bearer token and puts the claims in Locals
// under "user". Only the auth endpoints use it: CRM resources stay open.
func AuthMiddleware(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return httperr.Unauthorized(c, "Missing authorization header")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return httperr.Unauthorized(c, "Invalid authorization header")
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			return httperr.Unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
