// Package daemon wires the database, session store and web service together.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionpg "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/models"
	"github.com/climacurat/climacurat/internal/keepalive"
	"github.com/climacurat/climacurat/internal/web"
	"github.com/climacurat/climacurat/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	pinger     *keepalive.Pinger
}

// Start starts the keep-alive pinger and the Daemon's web service.
// It blocks until the web service has shut down.
func (d *Daemon) Start() error {
	d.pinger.Start()

	go func() {
		d.webService.WaitShutdown()
		d.pinger.Stop()
	}()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	var dialector gorm.Dialector
	if cfg.DevMode {
		dialector = sqlite.Open("climacurat.db")
	} else {
		if cfg.DatabaseURL == "" {
			log.Fatal().Err(config.ErrDatabaseURLEmpty).Msg("missing database configuration")
			return nil
		}

		dialector = postgres.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Service{},
		&models.Testimonial{},
		&models.GalleryItem{},
		&models.Benefit{},
		&models.Setting{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize the session store; the storage adapter creates the
	// sessions table itself when missing.
	var sessionStorage fiber.Storage
	if cfg.DevMode {
		sessionStorage = session.NewMemoryStorage()
	} else {
		sessionStorage = sessionpg.New(sessionpg.Config{
			ConnectionURI: cfg.DatabaseURL,
			Table:         "sessions",
		})
	}

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
		pinger:     keepalive.New(cfg.Webserver.ExternalURL, keepalive.DefaultInterval),
	}
}
