package models

// Benefit represents one benefit bullet shown on the public page.
type Benefit struct {
	ID          uint64 `gorm:"primaryKey"`
	Icon        string
	Color       string
	Title       string
	Description string
}
