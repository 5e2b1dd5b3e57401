package setting

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/climacurat/climacurat/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	settings, err := GetAll(db)
	require.NoError(t, err)
	assert.Empty(t, settings)

	_, err = Set(db, "site_name", "Curățare AC")
	require.NoError(t, err)
	_, err = Set(db, "phone", "0700 000 000")
	require.NoError(t, err)

	settings, err = GetAll(db)
	require.NoError(t, err)
	assert.Len(t, settings, 2)

	_, err = GetAll(nil)
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		key           string
		seed          map[string]string
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			key:           "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			dbParam:       db,
			key:           "",
			expectedError: ErrSettingKeyEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			key:           "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:          "successful get",
			dbParam:       db,
			key:           "site_name",
			seed:          map[string]string{"site_name": "My Site"},
			expectedValue: "My Site",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			for k, v := range tc.seed {
				_, err := Set(tc.dbParam, k, v)
				require.NoError(t, err)
			}

			setting, err := Get(tc.dbParam, tc.key)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				require.NotNil(t, setting)
				assert.Equal(t, tc.key, setting.Key)
				assert.Equal(t, tc.expectedValue, setting.Value)
			}
		})
	}
}

func TestSetIsIdempotentUpsert(t *testing.T) {
	db := setupTestDB(t)

	first, err := Set(db, "phone", "0700 000 000")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second, err := Set(db, "phone", "0700 000 001")
	require.NoError(t, err)

	// one row per key, updated_at advancing
	settings, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "0700 000 001", settings[0].Value)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	_, err = Set(db, "", "value")
	assert.ErrorIs(t, err, ErrSettingKeyEmpty)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "email", "x@example.com")
	require.NoError(t, err)

	require.NoError(t, Delete(db, "email"))
	assert.ErrorIs(t, Delete(db, "email"), ErrSettingNotFound)
	assert.ErrorIs(t, Delete(db, ""), ErrSettingKeyEmpty)
	assert.ErrorIs(t, Delete(nil, "email"), ErrDBNil)
}

func TestMap(t *testing.T) {
	assert.Empty(t, Map(nil))
	assert.Empty(t, Map([]models.Setting{}))

	out := Map([]models.Setting{
		{Key: "site_name", Value: "Curățare AC"},
		{Key: "phone", Value: "0700 000 000"},
	})

	assert.Equal(t, map[string]string{
		"site_name": "Curățare AC",
		"phone":     "0700 000 000",
	}, out)

	// missing keys stay absent
	_, ok := out["hero_title"]
	assert.False(t, ok)
}
