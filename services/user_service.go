package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/logger"
	"github.com/jayuttam/fitness-diet-recommendation-system/models"
	"github.com/jayuttam/fitness-diet-recommendation-system/utils"

	"gorm.io/gorm"
)

var (
	validGenders        = map[string]bool{"male": true, "female": true, "other": true}
	validActivityLevels = map[string]bool{"sedentary": true, "light": true, "moderate": true, "active": true}
	validGoals          = map[string]bool{"weight_loss": true, "muscle_gain": true, "maintenance": true}
)

// ProfileInput is the profile-update payload. Every field is optional; only
// provided fields are applied.
type ProfileInput struct {
	Name          *string  `json:"name"`
	Gender        *string  `json:"gender"`
	DOB           *string  `json:"dob"` // YYYY-MM-DD
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel *string  `json:"activityLevel"`
	Goal          *string  `json:"goal"`
	ProfilePic    *string  `json:"profilePic"` // base64 data URI
}

type UserService struct {
	db   *gorm.DB
	recs *RecommendationService
}

func NewUserService(db *gorm.DB, recs *RecommendationService) *UserService {
	return &UserService{db: db, recs: recs}
}

// bmiCategory buckets a BMI value per the standard WHO cut-offs.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

func profileView(u *models.User) map[string]any {
	age := 0
	dob := ""
	if !u.DOB.IsZero() {
		age = AgeYears(u.DOB)
		dob = u.DOB.Format("2006-01-02")
	}

	var bmi any
	var category any
	if u.Height > 0 && u.Weight > 0 {
		b := BMI(u.Weight, u.Height)
		bmi = b
		category = bmiCategory(b)
	}

	var rec any
	if !u.Recommendation.IsZero() {
		rec = u.Recommendation
	}

	return map[string]any{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"gender":        u.Gender,
		"dob":           dob,
		"age":           age,
		"height":        u.Height,
		"weight":        u.Weight,
		"activityLevel": u.ActivityLevel,
		"goal":          u.Goal,
		"profilePic":    u.ProfilePic,
		"bmi":           bmi,
		"bmiCategory":   category,
		"ml":            rec,
	}
}

// Profile returns the user's profile with derived age, BMI, and the cached
// recommendation (null when none has been produced yet).
func (s *UserService) Profile(ctx context.Context, userID uint) (map[string]any, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profileView(&user), nil
}

// UpdateProfile applies the provided fields and saves the profile, then
// refreshes the recommendation cache. The profile write always comes first:
// a prediction failure, an uncalculable profile, or even a failed cache
// write must never undo or block the save.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (map[string]any, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Gender != nil {
		g := strings.ToLower(strings.TrimSpace(*in.Gender))
		if !validGenders[g] {
			return nil, validationErrorf("gender must be one of male, female, other")
		}
		user.Gender = g
	}
	if in.DOB != nil {
		dob, err := time.Parse("2006-01-02", *in.DOB)
		if err != nil {
			return nil, validationErrorf("dob must be formatted as YYYY-MM-DD")
		}
		user.DOB = dob
	}
	if in.Height != nil {
		if *in.Height <= 0 {
			return nil, validationErrorf("height must be positive")
		}
		user.Height = *in.Height
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return nil, validationErrorf("weight must be positive")
		}
		user.Weight = *in.Weight
	}
	if in.ActivityLevel != nil {
		lvl := strings.ToLower(strings.TrimSpace(*in.ActivityLevel))
		if !validActivityLevels[lvl] {
			return nil, validationErrorf("activityLevel must be one of sedentary, light, moderate, active")
		}
		user.ActivityLevel = lvl
	}
	if in.Goal != nil {
		goal := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(*in.Goal)), " ", "_")
		if !validGoals[goal] {
			return nil, validationErrorf("goal must be one of weight_loss, muscle_gain, maintenance")
		}
		user.Goal = goal
	}
	if in.ProfilePic != nil && *in.ProfilePic != "" {
		// Picture upload is best-effort; the rest of the update still lands.
		if url, err := utils.UploadBase64ImageToS3(*in.ProfilePic, user.Email); err != nil {
			logger.Warn("profile picture upload failed", "user_id", user.ID, "err", err)
		} else {
			user.ProfilePic = url
		}
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	if _, refreshed := s.recs.Refresh(ctx, &user); refreshed {
		logger.Info("recommendation refreshed", "user_id", user.ID, "source", user.Recommendation.Source)
	}

	return profileView(&user), nil
}

// FindByEmail looks a user up by unique email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
