package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/winehouse/internal/i18n"
)

// LocaleRedirect sends requests for unprefixed page paths to the
// locale-prefixed equivalent, resolved from the Accept-Language header.
// Locale-prefixed paths, the API and static assets pass through untouched.
func LocaleRedirect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/images/") {
			return c.Next()
		}
		if _, ok := i18n.FromPath(path); ok {
			return c.Next()
		}

		locale := i18n.FromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		target := "/" + string(locale)
		if path != "/" {
			target += path
		}
		return c.Redirect(target, fiber.StatusFound)
	}
}
