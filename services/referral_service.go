package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// completedReferralPoints is awarded to the referrer when a referral
// completes.
const completedReferralPoints = 100

type ReferralService struct{ db *gorm.DB }

func NewReferralService(db *gorm.DB) *ReferralService { return &ReferralService{db: db} }

// newReferralCode derives a short shareable code from a random UUID.
func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create records that referrerID referred the user registered under email.
// A user can be referred only once, and not by themselves.
func (s *ReferralService) Create(ctx context.Context, referrerID uint, email string) (*models.Referral, error) {
	var referred models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&referred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if referred.ID == referrerID {
		return nil, validationErrorf("you cannot refer yourself")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Referral{}).
		Where("referred_user_id = ?", referred.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationErrorf("this user has already been referred")
	}

	ref := models.Referral{
		ReferrerID:     referrerID,
		ReferredUserID: referred.ID,
		Code:           newReferralCode(),
		Status:         models.ReferralPending,
	}
	if err := s.db.WithContext(ctx).Create(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

// ListByReferrer returns the user's referrals plus their total earned reward
// points.
func (s *ReferralService) ListByReferrer(ctx context.Context, referrerID uint) ([]models.Referral, int, error) {
	var refs []models.Referral
	err := s.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&refs).Error
	if err != nil {
		return nil, 0, err
	}

	points := 0
	for _, r := range refs {
		points += r.RewardPoints
	}
	return refs, points, nil
}

// Complete advances a referral owned by referrerID to completed and awards
// the reward points. Already-completed referrals are a ValidationError.
func (s *ReferralService) Complete(ctx context.Context, referrerID, referralID uint) (*models.Referral, error) {
	var ref models.Referral
	err := s.db.WithContext(ctx).
		Where("id = ? AND referrer_id = ?", referralID, referrerID).
		First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if ref.Status == models.ReferralCompleted || ref.Status == models.ReferralRewarded {
		return nil, validationErrorf("referral is already completed")
	}

	now := time.Now()
	ref.Status = models.ReferralCompleted
	ref.RewardPoints = completedReferralPoints
	ref.CompletedAt = &now
	if err := s.db.WithContext(ctx).Save(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}
