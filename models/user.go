package models

import (
	"time"

	"gorm.io/gorm"
)

// Recommendation is the cached diet/workout recommendation for a user.
// Source records where the numbers came from: "ai_model" (external ML
// service), "calculated" (local BMR/TDEE formula) or "fallback" (fixed
// defaults when neither worked). A zero GeneratedAt means no recommendation
// has been produced yet.
type Recommendation struct {
	Calories    int       `json:"calories"`
	DietType    int       `json:"diet_type"`    // 0=Low-Carb 1=Balanced 2=High-Protein
	WorkoutType int       `json:"workout_type"` // 0=Light 1=Moderate 2=Intense
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (r Recommendation) IsZero() bool { return r.GeneratedAt.IsZero() }

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Gender        string    `gorm:"size:10;default:male" json:"gender"` // male | female | other
	DOB           time.Time `json:"dob"`
	Height        float64   `json:"height"`                                         // cm
	Weight        float64   `json:"weight"`                                         // kg
	ActivityLevel string    `gorm:"size:16;default:moderate" json:"activity_level"` // sedentary | light | moderate | active
	Goal          string    `gorm:"size:16;default:weight_loss" json:"goal"`        // weight_loss | muscle_gain | maintenance
	ProfilePic    string    `json:"profile_pic"`

	// Advisory cache: writing it must never block a profile save.
	Recommendation Recommendation `gorm:"embedded;embeddedPrefix:rec_" json:"recommendation"`

	// Traversal-only back reference; the logs are owned by the user via the
	// UserID foreign key and this association is derived from it.
	DailyLogs []DailyLog `json:"-"`
}
