package models

// Testimonial represents client feedback shown on the public page.
type Testimonial struct {
	ID         uint64 `gorm:"primaryKey"`
	ClientName string
	ClientType string
	Feedback   string
	Rating     int
}
