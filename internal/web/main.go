// Package web wires the fiber application serving the public page and the
// admin dashboard.
package web

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	fiberlogger "github.com/climacurat/climacurat/internal/logger/adapter/fiber"
	"github.com/climacurat/climacurat/internal/web/handler/admin/content"
	"github.com/climacurat/climacurat/internal/web/handler/admin/dashboard"
	adminsettings "github.com/climacurat/climacurat/internal/web/handler/admin/settings"
	"github.com/climacurat/climacurat/internal/web/handler/health"
	"github.com/climacurat/climacurat/internal/web/handler/home"
	"github.com/climacurat/climacurat/internal/web/handler/login"
	"github.com/climacurat/climacurat/internal/web/handler/logout"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: wait a moment so the host
	// platform can remove this instance from its active targets.
	if !s.fastShutDown {
		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("setting", func(settings map[string]string, key, fallback string) string {
		if v, ok := settings[key]; ok && v != "" {
			return v
		}

		return fallback
	})
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "ClimaCurat",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
	}))

	// cookie values are encrypted with a key derived from the session secret
	if secret := cfg.Webserver.Session.Secret; secret != "" {
		digest := sha256.Sum256([]byte(secret))
		app.Use(encryptcookie.New(encryptcookie.Config{
			Key: base64.StdEncoding.EncodeToString(digest[:]),
		}))
	} else {
		log.Warn().Msg("SESSION_SECRET not set: session cookies are stored unencrypted")
	}

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	// init handlers (they register their own routes; admin routes are
	// gated by the auth middleware at registration)
	health.Handler.Init(app)
	logout.Handler.Init(app)

	if err := home.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init home handler")
	}

	if err := login.Handler.Init(app, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	if err := dashboard.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init dashboard handler")
	}

	if err := content.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init content handler")
	}

	if err := adminsettings.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init settings handler")
	}

	return service
}
