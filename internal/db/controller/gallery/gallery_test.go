package gallery

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.GalleryItem{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)

	for _, caption := range []string{"prima", "a doua", "a treia"} {
		_, err := Create(db, "https://example.com/"+caption+".jpg", caption)
		require.NoError(t, err)
	}

	items, err := List(db)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// id descending, the newest image comes first
	assert.Equal(t, "a treia", items[0].Caption)
	assert.Equal(t, "prima", items[2].Caption)
	assert.Greater(t, items[0].ID, items[1].ID)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "https://example.com/a.jpg", "înainte")
	require.NoError(t, err)

	updated, err := Update(db, created.ID, "https://example.com/b.jpg", "după")
	require.NoError(t, err)
	assert.Equal(t, "după", updated.Caption)

	_, err = Update(db, 424242, "x", "y")
	assert.ErrorIs(t, err, ErrGalleryItemNotFound)

	require.NoError(t, Delete(db, created.ID))
	assert.ErrorIs(t, Delete(db, created.ID), ErrGalleryItemNotFound)
}
