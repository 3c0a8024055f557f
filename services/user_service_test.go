package services

import (
	"context"
	"testing"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_SavesAndRefreshes(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "profile@example.com")
	// No prediction endpoint configured, so the refresh lands on the
	// local calculation.
	svc := NewUserService(db, testRecService(db, ""))

	view, err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
		Name:          strPtr("Jay"),
		Gender:        strPtr("Male"),
		DOB:           strPtr(dobForAge(30).Format("2006-01-02")),
		Height:        floatPtr(175),
		Weight:        floatPtr(70),
		ActivityLevel: strPtr("Moderate"),
		Goal:          strPtr("Weight Loss"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Jay", view["name"])
	assert.Equal(t, "male", view["gender"])
	assert.Equal(t, "moderate", view["activityLevel"])
	assert.Equal(t, "weight_loss", view["goal"])
	assert.Equal(t, 30, view["age"])
	assert.Equal(t, 22.9, view["bmi"])
	assert.Equal(t, "Normal weight", view["bmiCategory"])

	rec, ok := view["ml"].(models.Recommendation)
	require.True(t, ok)
	assert.Equal(t, SourceCalculated, rec.Source)
	assert.Equal(t, 2056, rec.Calories)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Jay", stored.Name)
	assert.Equal(t, 2056, stored.Recommendation.Calories)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	user := calculableUser(t, db)
	svc := NewUserService(db, testRecService(db, ""))

	view, err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
		Weight: floatPtr(72.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 72.5, view["weight"])
	assert.Equal(t, 175.0, view["height"])
	assert.Equal(t, user.Name, view["name"])
}

func TestUpdateProfile_IncompleteBiometricsSkipsRecommendation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "partial@example.com")
	svc := NewUserService(db, testRecService(db, ""))

	// Height alone is not enough to recommend, but the save still lands.
	view, err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
		Height: floatPtr(180),
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, view["height"])
	assert.Nil(t, view["ml"])

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 180.0, stored.Height)
	assert.True(t, stored.Recommendation.IsZero())
}

func TestUpdateProfile_Validation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "invalid@example.com")
	svc := NewUserService(db, testRecService(db, ""))

	cases := []struct {
		name  string
		input ProfileInput
	}{
		{"bad gender", ProfileInput{Gender: strPtr("robot")}},
		{"bad dob format", ProfileInput{DOB: strPtr("15-06-1995")}},
		{"zero height", ProfileInput{Height: floatPtr(0)}},
		{"negative weight", ProfileInput{Weight: floatPtr(-1)}},
		{"bad activity level", ProfileInput{ActivityLevel: strPtr("extreme")}},
		{"bad goal", ProfileInput{Goal: strPtr("get_swole")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), user.ID, tc.input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testRecService(db, ""))

	_, err := svc.UpdateProfile(context.Background(), 9999, ProfileInput{Name: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "view@example.com")
	svc := NewUserService(db, testRecService(db, ""))

	view, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, view["email"])
	// Nothing derived yet: no biometrics, no recommendation.
	assert.Equal(t, 0, view["age"])
	assert.Equal(t, "", view["dob"])
	assert.Nil(t, view["bmi"])
	assert.Nil(t, view["bmiCategory"])
	assert.Nil(t, view["ml"])

	_, err = svc.Profile(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByEmail(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "lookup@example.com")
	svc := NewUserService(db, testRecService(db, ""))

	found, err := svc.FindByEmail(context.Background(), "lookup@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = svc.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", bmiCategory(18.4))
	assert.Equal(t, "Normal weight", bmiCategory(18.5))
	assert.Equal(t, "Normal weight", bmiCategory(24.9))
	assert.Equal(t, "Overweight", bmiCategory(25.0))
	assert.Equal(t, "Obese", bmiCategory(30.0))
}
