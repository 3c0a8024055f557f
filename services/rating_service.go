package services

import (
	"context"
	"errors"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"gorm.io/gorm"
)

type RatingService struct{ db *gorm.DB }

func NewRatingService(db *gorm.DB) *RatingService { return &RatingService{db: db} }

// RatingView is a rating joined with the rater's display name.
type RatingView struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	UserName  string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Create stores a user's rating. Each user gets exactly one.
func (s *RatingService) Create(ctx context.Context, userID uint, rating int, review string) (*models.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, validationErrorf("rating must be between 1 and 5")
	}

	var existing models.Rating
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, validationErrorf("you have already submitted a rating")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	r := models.Rating{UserID: userID, Rating: rating, Review: review}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns all ratings newest first, each with the rater's name.
func (s *RatingService) List(ctx context.Context) ([]RatingView, error) {
	var out []RatingView
	err := s.db.WithContext(ctx).
		Table("ratings").
		Joins("JOIN users ON users.id = ratings.user_id").
		Select("ratings.id, ratings.rating, ratings.review, ratings.created_at, users.name AS user_name").
		Order("ratings.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
