package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/winehouse/internal/config"
	"github.com/example/winehouse/internal/utils"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "admin_session"

const adminContextKey = "currentAdmin"

// AuthMiddleware validates the session cookie and loads the authenticated
// admin identity into context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		claims, err := utils.ParseSessionToken(cfg.SessionSecret, cookie)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid session")
		}

		c.Locals(adminContextKey, claims)
		return c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin claims from context.
func CurrentAdmin(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	value := c.Locals(adminContextKey)
	if value == nil {
		return nil, false
	}

	if claims, ok := value.(*utils.SessionClaims); ok {
		return claims, true
	}

	return nil, false
}
