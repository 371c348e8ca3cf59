package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestSeedSuperAdmin(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedSuperAdmin(db, "admin", "admin123"))

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.Equal(t, models.AdminRoleSuperAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestSeedSuperAdmin_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedSuperAdmin(db, "admin", "admin123"))
	first := models.Admin{}
	require.NoError(t, db.Where("username = ?", "admin").First(&first).Error)

	// A second startup with a different password must not replace the row.
	require.NoError(t, SeedSuperAdmin(db, "admin", "other-password"))

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	second := models.Admin{}
	require.NoError(t, db.Where("username = ?", "admin").First(&second).Error)
	require.Equal(t, first.PasswordHash, second.PasswordHash)
}
