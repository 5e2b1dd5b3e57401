package config

import (
	"time"

	"github.com/climacurat/climacurat/internal/logger"
)

// Session settings.
type Session struct {
	Secret string
	TTL    time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode       bool   // enable dev mode for development (sqlite, in-memory sessions)
	Production    bool   // derived from ENV, controls the Secure cookie flag
	DatabaseURL   string // connection string for the hosted Postgres store
	AdminPassword string `validate:"required"` // shared admin secret, plaintext or argon2id hash
	Log           logger.Log
	Webserver     Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    `validate:"gt=0"` // listening port for the webserver
	ShutDownTime int    // wait time for shutdown in seconds
	ExternalURL  string // externally reachable base url, enables the keep-alive pinger
	Session      Session
}
