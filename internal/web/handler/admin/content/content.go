// Package content provides the admin save handlers for the four content
// tables. Each handler accepts an optional id, an optional action
// discriminator and the entity fields, applies exactly one mutation and
// redirects back to the dashboard regardless of outcome.
package content

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/web/handler"
	authmw "github.com/climacurat/climacurat/internal/web/middleware/auth"
)

const (
	// ActionDelete is the form action discriminator for deletions.
	ActionDelete = "delete"

	// RedirectTarget is where all save handlers redirect to.
	RedirectTarget = "/admin"

	// SaveServicePath is the path of the service save handler.
	SaveServicePath = "/admin/save-service"

	// SaveTestimonialPath is the path of the testimonial save handler.
	SaveTestimonialPath = "/admin/save-testimonial"

	// SaveGalleryPath is the path of the gallery save handler.
	SaveGalleryPath = "/admin/save-gallery"

	// SaveBenefitPath is the path of the benefit save handler.
	SaveBenefitPath = "/admin/save-benefit"
)

// Service is the content save handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the content save handler.
var Handler = Service{}

// Init initializes the content save handlers.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Post(SaveServicePath, authmw.RequireAdmin, s.SaveService)
	app.Post(SaveTestimonialPath, authmw.RequireAdmin, s.SaveTestimonial)
	app.Post(SaveGalleryPath, authmw.RequireAdmin, s.SaveGallery)
	app.Post(SaveBenefitPath, authmw.RequireAdmin, s.SaveBenefit)

	return nil
}

// formID parses the optional id form field. A submitted id that does not
// parse is an error, the caller must skip its mutation entirely so a broken
// update form never turns into an insert.
func formID(c *fiber.Ctx) (uint64, bool, error) {
	raw := strings.TrimSpace(c.FormValue("id"))
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn().Str("id", raw).Msg("skipping save with unparsable id form field")
		return 0, false, errors.New("unparsable id form field")
	}

	return id, true, nil
}

// formInt parses a numeric form field, defaulting to 0.
func formInt(c *fiber.Ctx, key string) int {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str(key, raw).Msg("ignoring unparsable numeric form field")
		return 0
	}

	return n
}
