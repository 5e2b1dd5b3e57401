package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climacurat/climacurat/internal/web/handler"
	"github.com/climacurat/climacurat/internal/web/session"
)

func TestLogoutDestroysSession(t *testing.T) {
	session.Init(session.NewMemoryStorage())

	app := fiber.New()

	var s Service
	s.Init(app)

	sessionID := session.GenerateSessionID()
	data := &session.Data{IsAdmin: true}
	require.NoError(t, data.Write(sessionID, time.Minute))

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.RootPath, resp.Header.Get("Location"))

	var stale session.Data
	assert.Error(t, stale.Read(sessionID), "session must be gone after logout")

	var cleared *http.Cookie

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			cleared = cookie
		}
	}

	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestLogoutWithoutCookieStillRedirects(t *testing.T) {
	session.Init(session.NewMemoryStorage())

	app := fiber.New()

	var s Service
	s.Init(app)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.RootPath, resp.Header.Get("Location"))
}
