package models

import (
	"time"
)

// Setting represents one key/value pair of the site configuration.
// Keys have no fixed schema, any admin submitted form field becomes a key.
type Setting struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string
	UpdatedAt time.Time
}
