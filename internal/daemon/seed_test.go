package daemon

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/config"
	"github.com/climacurat/climacurat/internal/db/controller/setting"
	"github.com/climacurat/climacurat/internal/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	return db
}

func TestSeedPopulatesEmptyTable(t *testing.T) {
	db := newTestDB(t)

	seed(&config.Config{}, db)

	rows, err := setting.GetAll(db)
	require.NoError(t, err)
	require.Len(t, rows, len(defaultSettings))

	values := setting.Map(rows)
	for key, want := range defaultSettings {
		assert.Equal(t, want, values[key])
	}
}

func TestSeedKeepsExistingSettings(t *testing.T) {
	db := newTestDB(t)

	_, err := setting.Set(db, "site_name", "Nume propriu")
	require.NoError(t, err)

	seed(&config.Config{}, db)

	rows, err := setting.GetAll(db)
	require.NoError(t, err)
	require.Len(t, rows, 1, "a non-empty table must not be seeded")
	assert.Equal(t, "Nume propriu", rows[0].Value)
}
