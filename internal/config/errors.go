package config

import (
	"errors"
)

var (
	// ErrAdminPasswordEmpty error if ADMIN_PASSWORD is not set.
	ErrAdminPasswordEmpty = errors.New("config ADMIN_PASSWORD can not be empty")

	// ErrDatabaseURLEmpty error if DATABASE_URL is not set outside dev mode.
	ErrDatabaseURLEmpty = errors.New("config DATABASE_URL can not be empty outside dev mode")

	// ErrWebServerPortCanNotBeZero error if the configured listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config PORT listening port can not be 0")
)
