package services

import (
	"context"
	"strings"

	"github.com/jayuttam/fitness-diet-recommendation-system/logger"
	"github.com/jayuttam/fitness-diet-recommendation-system/models"
	"github.com/jayuttam/fitness-diet-recommendation-system/utils"

	"gorm.io/gorm"
)

type ContactService struct{ db *gorm.DB }

func NewContactService(db *gorm.DB) *ContactService { return &ContactService{db: db} }

// Create stores a contact-form message and notifies the site owner by email.
// The notification is best-effort; a send failure is logged, not surfaced.
func (s *ContactService) Create(ctx context.Context, fullName, email, description string) (*models.Contact, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(description) == "" {
		return nil, validationErrorf("full name, email and description are required")
	}

	msg := models.Contact{FullName: fullName, Email: email, Description: description}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	if err := utils.SendContactNotification(fullName, email, description); err != nil {
		logger.Warn("contact notification email failed", "err", err)
	}

	return &msg, nil
}
