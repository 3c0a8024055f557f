package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReferralPending   = "pending"
	ReferralActive    = "active"
	ReferralCompleted = "completed"
	ReferralRewarded  = "rewarded"
)

// Referral links a referrer to the user they brought in. A user can be
// referred at most once (unique ReferredUserID).
type Referral struct {
	gorm.Model
	ReferrerID     uint       `gorm:"index;not null" json:"referrer_id"`
	ReferredUserID uint       `gorm:"uniqueIndex;not null" json:"referred_user_id"`
	Code           string     `gorm:"size:16;not null" json:"code"`
	Status         string     `gorm:"size:16;default:pending" json:"status"`
	RewardPoints   int        `gorm:"default:0" json:"reward_points"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
