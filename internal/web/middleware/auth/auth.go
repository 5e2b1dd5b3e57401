package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/climacurat/climacurat/internal/web/session"
)

// LoginPath is where unauthenticated admin requests are redirected to.
const LoginPath = "/login"

// RequireAdmin is a Fiber middleware that gates admin-only routes.
// Requests without a valid admin session are redirected to the login page,
// never answered with an error status.
func RequireAdmin(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return c.Redirect(LoginPath)
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil || !sessData.IsAdmin {
		return c.Redirect(LoginPath)
	}

	return c.Next()
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(c *fiber.Ctx) bool {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return false
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil {
		return false
	}

	return sessData.IsAdmin
}
