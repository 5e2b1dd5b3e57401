// Package dashboard provides the admin dashboard handler.
package dashboard

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
	authmw "github.com/climacurat/climacurat/internal/web/middleware/auth"
	"github.com/climacurat/climacurat/internal/web/navigation"
)

const (
	// Path is the path to the admin dashboard.
	Path = "/admin"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin"

	// TabServices is the services dashboard tab.
	TabServices = "services"

	// TabTestimonials is the testimonials dashboard tab.
	TabTestimonials = "testimonials"

	// TabGallery is the gallery dashboard tab.
	TabGallery = "gallery"

	// TabBenefits is the benefits dashboard tab.
	TabBenefits = "benefits"

	// TabSettings is the settings dashboard tab.
	TabSettings = "settings"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, authmw.RequireAdmin, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
// The five collections are fetched independently, a failed fetch is logged
// and rendered as an empty collection without aborting the others.
func (s *Service) Get(c *fiber.Ctx) error {
	activeTab := c.Query("tab", TabServices)

	nav := navigation.NewContext("Panou Administrare", activeTab).
		AddTab("Servicii", TabServices).
		AddTab("Testimoniale", TabTestimonials).
		AddTab("Galerie", TabGallery).
		AddTab("Beneficii", TabBenefits).
		AddTab("Setări", TabSettings)

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

	log.Debug().
		Int("services", len(services)).
		Int("testimonials", len(testimonials)).
		Int("gallery", len(galleryItems)).
		Int("benefits", len(benefits)).
		Int("settings", len(settingRows)).
		Msg("admin dashboard loaded")

	return c.Render(TemplateName, fiber.Map{
		"Navigation":   nav,
		"Services":     services,
		"Testimonials": testimonials,
		"Gallery":      galleryItems,
		"Benefits":     benefits,
		"Settings":     setting.Map(settingRows),
	})
}
