package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Protected guards a route group with bearer-token authentication. The
// signature and expiry are checked by the JWT middleware; issuer, audience and
// subject are checked here before the username lands in c.Locals("username").
func Protected() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}

			if !claims.VerifyIssuer(os.Getenv("JWT_ISSUER"), true) {
				return unauthorized(c)
			}
			if !claims.VerifyAudience(os.Getenv("JWT_AUDIENCE"), true) {
				return unauthorized(c)
			}

			username, ok := claims["sub"].(string)
			if !ok || username == "" {
				return unauthorized(c)
			}

			c.Locals("username", username)
			return c.Next()
		},
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "User is not authenticated",
	})
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid or expired token",
	})
}
