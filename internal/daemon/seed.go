package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/controller/setting"
	"github.com/climacurat/climacurat/internal/db/models"
)

// defaultSettings are seeded once so a fresh install renders a sensible page.
var defaultSettings = map[string]string{
	"site_name": "Curățare AC",
	"phone":     "0700 000 000",
	"email":     "contact@curatare-ac.ro",
}

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial settings if the settings table is empty

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	if count > 0 {
		return
	}

	for key, value := range defaultSettings {
		if _, err := setting.Set(db, key, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to seed setting")
		}
	}
}
