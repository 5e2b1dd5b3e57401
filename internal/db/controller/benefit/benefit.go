// Package benefit provides CRUD operations for the benefits content table.
package benefit

import (
	"errors"

	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrBenefitNotFound is returned when a benefit is not found.
	ErrBenefitNotFound = errors.New("benefit not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all benefits ordered by id ascending.
func List(db *gorm.DB) ([]models.Benefit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var benefits []models.Benefit
	result := db.Order("id asc").Find(&benefits)
	if result.Error != nil {
		return nil, result.Error
	}

	return benefits, nil
}

// Create inserts a new benefit.
func Create(db *gorm.DB, icon, color, title, description string) (*models.Benefit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	benefit := &models.Benefit{
		Icon:        icon,
		Color:       color,
		Title:       title,
		Description: description,
	}

	result := db.Create(benefit)
	if result.Error != nil {
		return nil, result.Error
	}

	return benefit, nil
}

// Update updates an existing benefit by id.
func Update(db *gorm.DB, id uint64, icon, color, title, description string) (*models.Benefit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var benefit models.Benefit
	result := db.Where(idQueryPattern, id).First(&benefit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBenefitNotFound
		}
		return nil, result.Error
	}

	benefit.Icon = icon
	benefit.Color = color
	benefit.Title = title
	benefit.Description = description

	result = db.Save(&benefit)
	if result.Error != nil {
		return nil, result.Error
	}

	return &benefit, nil
}

// Delete deletes a benefit by id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Benefit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBenefitNotFound
	}

	return nil
}
