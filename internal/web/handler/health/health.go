// Package health provides the liveness endpoint used by the keep-alive pinger.
package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Path is the path to the health endpoint.
const Path = "/health"

// Service is the health handler service.
type Service struct{}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App) {
	if app == nil {
		log.Fatal().Msg("app is nil")
		return
	}

	app.Get(Path, s.Get)
}

// Get answers liveness probes with a fixed body.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.SendString("OK")
}
