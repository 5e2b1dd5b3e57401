// Package login provides the admin login handlers.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/auth"
	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/web/handler"
	authmw "github.com/climacurat/climacurat/internal/web/middleware/auth"
	"github.com/climacurat/climacurat/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"

	// RedirectTarget is where successful logins land.
	RedirectTarget = "/admin"

	// ErrWrongPassword is the fixed user visible message on a failed login.
	ErrWrongPassword = "Parolă incorectă!"

	// ErrLoginFailed is shown when the session could not be persisted.
	ErrLoginFailed = "Eroare internă, încercați din nou!"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	// already authenticated sessions skip the form
	if authmw.IsAdmin(c) {
		return c.Redirect(RedirectTarget)
	}

	return c.Render(TemplateName, fiber.Map{})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	password := c.FormValue("password")

	if !auth.VerifyAdminPassword(s.cfg.AdminPassword, password) {
		return c.Render(TemplateName, fiber.Map{
			"error": ErrWrongPassword,
		})
	}

	sessionID := session.GenerateSessionID()

	adminSession := &session.Data{IsAdmin: true}
	if err := adminSession.Write(sessionID, s.cfg.Webserver.Session.TTL); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return c.Render(TemplateName, fiber.Map{
			"error": ErrLoginFailed,
		})
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.TTL.Seconds()),
		Secure:   s.cfg.Production,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	c.Cookie(cookieSettings)

	return c.Redirect(RedirectTarget)
}
