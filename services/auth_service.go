package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"
	"github.com/jayuttam/fitness-diet-recommendation-system/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates a user with a bcrypt-hashed password. A taken email is a
// ValidationError, not a server failure.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationErrorf("email already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials and returns a signed JWT. Wrong email
// and wrong password produce the same error.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", validationErrorf("invalid email or password")
	}
	if err != nil {
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", validationErrorf("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
