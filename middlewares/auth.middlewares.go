package middlewares

import (
	"NAKAMA_server/errors"
	"NAKAMA_server/global"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Authenticate resolves the bearer token to a user id via the identity
// provider and stores it in locals. Everything beyond "token maps to user"
// (expiry, refresh, revocation) is the provider's responsibility.
func Authenticate(c *fiber.Ctx) error {

	authorization := string(c.Request().Header.Peek("Authorization"))
	chunks := strings.Split(authorization, "Bearer ")
	if len(chunks) != 2 || chunks[1] == "" {
		return errors.HandleUnauthorizedError(c)
	}

	userID, err := global.Identity.ResolveToken(chunks[1])
	if err != nil || userID == "" {
		return errors.HandleUnauthorizedError(c)
	}

	c.Locals("userid", userID)
	return c.Next()
}
