// Package config loads the process configuration from environment variables.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/climacurat/climacurat/internal/logger"
)

const (
	envProduction = "production"

	defaultPort         = 3000
	defaultSessionTTL   = "24h"
	defaultShutDownTime = 5
)

// Load reads the configuration from the environment.
// All values are environment sourced, there is no reload mechanism.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("ENV", "development")
	v.SetDefault("DEV_MODE", false)
	v.SetDefault("SESSION_TTL", defaultSessionTTL)
	v.SetDefault("SHUTDOWN_TIME", defaultShutDownTime)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_CONSOLE_WRITER", false)
	v.SetDefault("LOG_ACCESS_TO_CONSOLE", true)

	// keys without defaults need an explicit binding for AutomaticEnv
	for _, key := range []string{
		"DATABASE_URL", "ADMIN_PASSWORD", "SESSION_SECRET", "EXTERNAL_URL",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, errors.Wrap(err, "failed to bind env key "+key)
		}
	}

	c := Config{
		DevMode:       v.GetBool("DEV_MODE"),
		Production:    strings.EqualFold(v.GetString("ENV"), envProduction),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		Log: logger.Log{
			LogLevel:                 v.GetString("LOG_LEVEL"),
			AppName:                  "climacurat",
			ServiceName:              "website",
			EnableAccessLogToConsole: v.GetBool("LOG_ACCESS_TO_CONSOLE"),
			DisableCheckAlive:        true, // keep-alive pings /health every 14 minutes
			Console: logger.Console{
				Enabled:          true,
				UseConsoleWriter: v.GetBool("LOG_CONSOLE_WRITER"),
			},
		},
		Webserver: Webserver{
			Port:         v.GetInt("PORT"),
			ShutDownTime: v.GetInt("SHUTDOWN_TIME"),
			ExternalURL:  strings.TrimSuffix(v.GetString("EXTERNAL_URL"), "/"),
			Session: Session{
				Secret: v.GetString("SESSION_SECRET"),
				TTL:    v.GetDuration("SESSION_TTL"),
			},
		},
	}

	return c, validate(c)
}

// validate minimal config settings needed to serve requests.
func validate(c Config) error {
	if c.AdminPassword == "" {
		return ErrAdminPasswordEmpty
	}

	if c.Webserver.Port == 0 {
		return ErrWebServerPortCanNotBeZero
	}

	if !c.DevMode && c.DatabaseURL == "" {
		return ErrDatabaseURLEmpty
	}

	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}
