package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null" json:"email"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
