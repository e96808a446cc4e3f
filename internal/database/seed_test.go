package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/winehouse/internal/models"
	"github.com/example/winehouse/internal/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	return conn
}

func TestSeedPopulatesEmptyTables(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Seed(conn))

	var categories int64
	conn.Model(&models.Category{}).Count(&categories)
	assert.EqualValues(t, 3, categories)

	var wines int64
	conn.Model(&models.Wine{}).Count(&wines)
	assert.EqualValues(t, 10, wines)

	var countries int64
	conn.Model(&models.Country{}).Count(&countries)
	assert.EqualValues(t, 7, countries)

	var settings int64
	conn.Model(&models.SiteSetting{}).Count(&settings)
	assert.EqualValues(t, 8, settings)

	var red models.Category
	require.NoError(t, conn.Where("slug = ?", "red").First(&red).Error)
	assert.Equal(t, "红葡萄酒", red.Name.Zh)
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Seed(conn))
	require.NoError(t, Seed(conn))

	var wines int64
	conn.Model(&models.Wine{}).Count(&wines)
	assert.EqualValues(t, 10, wines)

	var admins int64
	conn.Model(&models.Admin{}).Count(&admins)
	assert.EqualValues(t, 1, admins)
}

func TestSeedDefaultAdminCredentials(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Seed(conn))

	var admin models.Admin
	require.NoError(t, conn.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, utils.CheckPassword(admin.PasswordHash, "admin123"))
}
