// Package settings provides the admin settings save handler.
//
// Every submitted form field becomes one upsert by key. There is no
// allow-list, the admin form defines the settings schema implicitly
// through its field names.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/controller/setting"
	"github.com/climacurat/climacurat/internal/web/handler"
	authmw "github.com/climacurat/climacurat/internal/web/middleware/auth"
)

const (
	// Path is the path of the settings save handler.
	Path = "/admin/save-settings"

	// RedirectTarget is where the handler redirects to.
	RedirectTarget = "/admin"
)

// Service is the settings save handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings save handler.
var Handler = Service{}

// Init initializes the settings save handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, authmw.RequireAdmin, s.Post)

	return nil
}

// Post upserts every submitted form field as one setting row.
// Failures are logged, the response redirects either way.
func (s *Service) Post(c *fiber.Ctx) error {
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		if _, err := setting.Set(s.db, string(key), string(value)); err != nil {
			log.Error().Err(err).Str("key", string(key)).Msg("failed to upsert setting")
		}
	})

	return c.Redirect(RedirectTarget)
}
