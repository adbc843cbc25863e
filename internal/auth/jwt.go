package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Middleware validates the Bearer token and places {actor_id, actor_role}
// in request Locals. Everything behind this middleware trusts that identity;
// authorization itself happens later in the access middleware.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}

		actorID, ok := claims["actor_id"].(float64)
		if !ok || actorID <= 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "token missing actor_id")
		}
		role, ok := claims["role"].(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "token missing role")
		}

		c.Locals("actor_id", uint(actorID))
		c.Locals("actor_role", role)
		return c.Next()
	}
}
