// Package gallery provides CRUD operations for the gallery content table.
package gallery

import (
	"errors"

	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrGalleryItemNotFound is returned when a gallery item is not found.
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all gallery items, most recent first.
func List(db *gorm.DB) ([]models.GalleryItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.GalleryItem
	result := db.Order("id desc").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Create inserts a new gallery item.
func Create(db *gorm.DB, imageURL, caption string) (*models.GalleryItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	item := &models.GalleryItem{
		ImageURL: imageURL,
		Caption:  caption,
	}

	result := db.Create(item)
	if result.Error != nil {
		return nil, result.Error
	}

	return item, nil
}

// Update updates an existing gallery item by id.
func Update(db *gorm.DB, id uint64, imageURL, caption string) (*models.GalleryItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item models.GalleryItem
	result := db.Where(idQueryPattern, id).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, result.Error
	}

	item.ImageURL = imageURL
	item.Caption = caption

	result = db.Save(&item)
	if result.Error != nil {
		return nil, result.Error
	}

	return &item, nil
}

// Delete deletes a gallery item by id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.GalleryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryItemNotFound
	}

	return nil
}
