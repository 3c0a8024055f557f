package services

import (
	"testing"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.Rating{},
		&models.Referral{},
		&models.Contact{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:          "Test User",
		Email:         email,
		Password:      "hashed",
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "weight_loss",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// dobForAge returns a birth date such that the year-subtraction age policy
// yields exactly the given age.
func dobForAge(age int) time.Time {
	return time.Date(time.Now().Year()-age, time.June, 15, 0, 0, 0, 0, time.UTC)
}
