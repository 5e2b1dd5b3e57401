// Package logout provides the logout handler.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/web/handler"
	"github.com/climacurat/climacurat/internal/web/session"
)

// Path is the path to the logout endpoint.
const Path = "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App) {
	if app == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	app.Get(Path, s.Logout)
}

// Logout destroys the session unconditionally and redirects to the public page.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		if err := session.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	// Clear the session cookie
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(handler.RootPath)
}
