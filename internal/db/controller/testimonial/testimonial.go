// Package testimonial provides CRUD operations for the testimonials content table.
package testimonial

import (
	"errors"

	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrTestimonialNotFound is returned when a testimonial is not found.
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all testimonials ordered by id ascending.
func List(db *gorm.DB) ([]models.Testimonial, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var testimonials []models.Testimonial
	result := db.Order("id asc").Find(&testimonials)
	if result.Error != nil {
		return nil, result.Error
	}

	return testimonials, nil
}

// Create inserts a new testimonial.
func Create(db *gorm.DB, clientName, clientType, feedback string, rating int) (*models.Testimonial, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	testimonial := &models.Testimonial{
		ClientName: clientName,
		ClientType: clientType,
		Feedback:   feedback,
		Rating:     rating,
	}

	result := db.Create(testimonial)
	if result.Error != nil {
		return nil, result.Error
	}

	return testimonial, nil
}

// Update updates an existing testimonial by id.
func Update(db *gorm.DB, id uint64, clientName, clientType, feedback string, rating int) (*models.Testimonial, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var testimonial models.Testimonial
	result := db.Where(idQueryPattern, id).First(&testimonial)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, result.Error
	}

	testimonial.ClientName = clientName
	testimonial.ClientType = clientType
	testimonial.Feedback = feedback
	testimonial.Rating = rating

	result = db.Save(&testimonial)
	if result.Error != nil {
		return nil, result.Error
	}

	return &testimonial, nil
}

// Delete deletes a testimonial by id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}
