// Package service provides CRUD operations for the services content table.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all services ordered by id ascending.
func List(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service
	result := db.Order("id asc").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// Create inserts a new service.
func Create(db *gorm.DB, icon, title, description string) (*models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	service := &models.Service{
		Icon:        icon,
		Title:       title,
		Description: description,
	}

	result := db.Create(service)
	if result.Error != nil {
		return nil, result.Error
	}

	return service, nil
}

// Update updates an existing service by id.
func Update(db *gorm.DB, id uint64, icon, title, description string) (*models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var service models.Service
	result := db.Where(idQueryPattern, id).First(&service)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, result.Error
	}

	service.Icon = icon
	service.Title = title
	service.Description = description

	result = db.Save(&service)
	if result.Error != nil {
		return nil, result.Error
	}

	return &service, nil
}

// Delete deletes a service by id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
