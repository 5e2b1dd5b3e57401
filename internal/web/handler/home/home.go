// Package home provides the public page handler.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/controller/benefit"
	"github.com/climacurat/climacurat/internal/db/controller/gallery"
	"github.com/climacurat/climacurat/internal/db/controller/service"
	"github.com/climacurat/climacurat/internal/db/controller/setting"
	"github.com/climacurat/climacurat/internal/db/controller/testimonial"
	"github.com/climacurat/climacurat/internal/db/models"
	"github.com/climacurat/climacurat/internal/web/handler"
)

const (
	// Path is the path to the public page.
	Path = handler.RootPath

	// TemplateName is the name of the public page template.
	TemplateName = "index"

	// DefaultSiteName is used when the site_name setting is absent.
	DefaultSiteName = "Curățare AC"

	// Subtitle is the fixed part of the page title.
	Subtitle = "Servicii Profesionale de Curățare Aer Condiționat în Galați"
)

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the public page from all content tables.
// Every fetch failure is logged and degraded to an empty collection,
// the page itself always renders.
func (s *Service) Get(c *fiber.Ctx) error {
	services, err := service.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch services")
		services = []models.Service{}
	}

	testimonials, err := testimonial.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch testimonials")
		testimonials = []models.Testimonial{}
	}

	galleryItems, err := gallery.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch gallery")
		galleryItems = []models.GalleryItem{}
	}

	benefits, err := benefit.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch benefits")
		benefits = []models.Benefit{}
	}

	settingRows, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings")
	}

	settings := setting.Map(settingRows)

	siteName := settings["site_name"]
	if siteName == "" {
		siteName = DefaultSiteName
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":        siteName + " - " + Subtitle,
		"Settings":     settings,
		"Services":     services,
		"Testimonials": testimonials,
		"Gallery":      galleryItems,
		"Benefits":     benefits,
	})
}
