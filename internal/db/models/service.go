// Package models contains database model definitions.
package models

// Service represents one offered service shown on the public page.
type Service struct {
	ID          uint64 `gorm:"primaryKey"`
	Icon        string
	Title       string
	Description string
}
