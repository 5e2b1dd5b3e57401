// Package session persists admin session state in a fiber storage backend.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/climacurat/climacurat/internal/uniuri"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Store is the global session storage instance.
var Store fiber.Storage

// Data represents the session data structure.
type Data struct {
	IsAdmin bool
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := Store.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Destroy removes the session record for the given session ID.
func Destroy(sessionID string) error {
	return Store.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
func Init(storage fiber.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Store = storage
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() string {
	return uniuri.NewLen(uniuri.SessionLen)
}
