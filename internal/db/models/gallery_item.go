package models

// GalleryItem represents one image in the before/after gallery.
type GalleryItem struct {
	ID       uint64 `gorm:"primaryKey"`
	ImageURL string
	Caption  string
}

// TableName keeps the table name of the original schema.
func (GalleryItem) TableName() string {
	return "gallery"
}
