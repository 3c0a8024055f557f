package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/logger"
	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"gorm.io/gorm"
)

// Recommendation provenance tags.
const (
	SourceAIModel    = "ai_model"
	SourceCalculated = "calculated"
	SourceFallback   = "fallback"
)

// Fixed defaults used when neither the prediction service nor the local
// calculation can produce a recommendation.
const (
	fallbackCalories    = 2000
	fallbackDietType    = 1
	fallbackWorkoutType = 1
)

// activityMultipliers maps activity level to its TDEE multiplier. Profile
// validation only admits the first four; very_active stays here as an
// extension tier for callers that relax that check.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// formula. Weight in kg, height in cm. Non-male genders use the female
// constant.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// AgeYears is current year minus birth year; month and day are ignored.
// The same policy is used everywhere age appears.
func AgeYears(dob time.Time) int { return time.Now().Year() - dob.Year() }

// BMI is weight over squared height in meters, rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*10) / 10
}

// DietTypeFor classifies the goal: 0=Low-Carb, 1=Balanced, 2=High-Protein.
func DietTypeFor(goal string) int {
	switch goal {
	case "weight_loss":
		return 0
	case "muscle_gain":
		return 2
	default:
		return 1
	}
}

// WorkoutTypeFor classifies the activity level: 0=Light, 1=Moderate,
// 2=Intense.
func WorkoutTypeFor(activityLevel string) int {
	switch activityLevel {
	case "sedentary":
		return 0
	case "light":
		return 1
	default:
		return 2
	}
}

// Calculate produces the deterministic recommendation from the user's
// biometrics: goal-adjusted TDEE calories plus diet/workout classes.
// ok=false means the profile is not calculable (missing height, weight or
// date of birth, or an unknown activity level) and the caller should treat
// the recommendation as skipped, not failed.
func Calculate(u *models.User) (models.Recommendation, bool) {
	if u.Height <= 0 || u.Weight <= 0 || u.DOB.IsZero() {
		return models.Recommendation{}, false
	}
	mult, found := activityMultipliers[u.ActivityLevel]
	if !found {
		return models.Recommendation{}, false
	}

	bmr := CalculateBMR(u.Weight, u.Height, AgeYears(u.DOB), u.Gender)
	tdee := bmr * mult

	calories := tdee
	switch u.Goal {
	case "weight_loss":
		calories -= 500
	case "muscle_gain":
		calories += 300
	}

	return models.Recommendation{
		Calories:    int(math.Round(calories)),
		DietType:    DietTypeFor(u.Goal),
		WorkoutType: WorkoutTypeFor(u.ActivityLevel),
		Source:      SourceCalculated,
		GeneratedAt: time.Now(),
	}, true
}

// PredictionRequest is the wire shape the ML service expects.
type PredictionRequest struct {
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	BMI           float64 `json:"bmi"`
}

// predictionResponse fields are pointers so a missing field is detectable;
// anything short of all three present counts as a malformed response.
type predictionResponse struct {
	Calories    *int `json:"calories"`
	DietType    *int `json:"diet_type"`
	WorkoutType *int `json:"workout_type"`
}

type RecommendationService struct {
	db      *gorm.DB
	client  *http.Client
	baseURL string
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{
		db:      db,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: os.Getenv("ML_SERVICE_URL"),
	}
}

// predict calls the external ML service with the user's biometrics plus a
// precomputed BMI. Any transport error, non-200 status, or malformed body is
// returned as an error for the caller to absorb.
func (r *RecommendationService) predict(ctx context.Context, u *models.User) (*models.Recommendation, error) {
	if r.baseURL == "" {
		return nil, errors.New("ML_SERVICE_URL not set")
	}

	body, err := json.Marshal(PredictionRequest{
		Age:           AgeYears(u.DOB),
		HeightCm:      u.Height,
		WeightKg:      u.Weight,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
		BMI:           BMI(u.Weight, u.Height),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read prediction response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("prediction service error (%d): %s", resp.StatusCode, preview)
	}

	var out predictionResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode prediction response: %w", err)
	}
	if out.Calories == nil || out.DietType == nil || out.WorkoutType == nil {
		return nil, errors.New("malformed prediction response: missing fields")
	}

	return &models.Recommendation{
		Calories:    *out.Calories,
		DietType:    *out.DietType,
		WorkoutType: *out.WorkoutType,
		Source:      SourceAIModel,
		GeneratedAt: time.Now(),
	}, nil
}

// Refresh recomputes the user's cached recommendation and persists it on the
// user record. Preference order: external prediction, local calculation,
// fixed fallback. With incomplete biometrics the refresh is skipped and the
// existing cache is returned untouched. This path never returns an error;
// failures are logged and absorbed so a profile save cannot be blocked by
// its advisory cache.
func (r *RecommendationService) Refresh(ctx context.Context, user *models.User) (models.Recommendation, bool) {
	if user.Height <= 0 || user.Weight <= 0 || user.DOB.IsZero() {
		logger.Debug("recommendation skipped: incomplete biometrics", "user_id", user.ID)
		return user.Recommendation, false
	}

	var rec models.Recommendation
	if p, err := r.predict(ctx, user); err == nil {
		rec = *p
	} else {
		logger.Warn("prediction service unavailable, falling back", "user_id", user.ID, "err", err)
		var ok bool
		if rec, ok = Calculate(user); !ok {
			rec = models.Recommendation{
				Calories:    fallbackCalories,
				DietType:    fallbackDietType,
				WorkoutType: fallbackWorkoutType,
				Source:      SourceFallback,
				GeneratedAt: time.Now(),
			}
		}
	}

	user.Recommendation = rec
	if err := r.db.WithContext(ctx).Model(user).Updates(map[string]any{
		"rec_calories":     rec.Calories,
		"rec_diet_type":    rec.DietType,
		"rec_workout_type": rec.WorkoutType,
		"rec_source":       rec.Source,
		"rec_generated_at": rec.GeneratedAt,
	}).Error; err != nil {
		logger.Error("failed to persist recommendation cache", "user_id", user.ID, "err", err)
	}
	return rec, true
}
