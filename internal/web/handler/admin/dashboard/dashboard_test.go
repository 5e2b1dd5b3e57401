package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/models"
	authmw "github.com/climacurat/climacurat/internal/web/middleware/auth"
	"github.com/climacurat/climacurat/internal/web/navigation"
	"github.com/climacurat/climacurat/internal/web/session"
)

// tabViews writes the active tab name so tests can assert tab selection.
type tabViews struct{}

func (tabViews) Load() error { return nil }

func (tabViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if nav, exists := m["Navigation"]; exists && nav != nil {
			if ctx, ok := nav.(*navigation.Context); ok {
				_, _ = io.WriteString(w, ctx.ActiveTab)
				return nil
			}
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func newTestService(t *testing.T) *fiber.App {
	t.Helper()

	session.Init(session.NewMemoryStorage())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.Testimonial{},
		&models.GalleryItem{},
		&models.Benefit{},
		&models.Setting{},
	))

	app := fiber.New(fiber.Config{Views: tabViews{}})

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	sessionID := session.GenerateSessionID()
	data := &session.Data{IsAdmin: true}
	require.NoError(t, data.Write(sessionID, time.Minute))

	return &http.Cookie{Name: session.CookieName, Value: sessionID}
}

func TestGetRequiresSession(t *testing.T) {
	app := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, authmw.LoginPath, resp.Header.Get("Location"))
}

func TestGetDefaultsToServicesTab(t *testing.T) {
	app := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	req.AddCookie(adminCookie(t))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, TabServices, string(body))
}

func TestGetSelectsRequestedTab(t *testing.T) {
	app := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, Path+"?tab="+TabGallery, nil)
	req.AddCookie(adminCookie(t))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, TabGallery, string(body))
}
