// Package middleware provides the authentication gate for protected routes.
package middleware

import (
	"strings"

	"picpoints/auth"
	"picpoints/config"

	"github.com/gofiber/fiber/v2"
)

var tokens *auth.TokenService

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	tokens = auth.NewTokenService(c)
}

// AuthRequired enforces a valid bearer access token and stores the caller's
// username in the request context.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization header required",
		})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid authorization header format",
		})
	}

	username, err := tokens.ParseAccess(parts[1])
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	c.Locals("username", username)
	return c.Next()
}
