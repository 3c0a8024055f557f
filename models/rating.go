package models

import "time"

// Rating is a user's one-time app rating. The unique index on UserID keeps
// it to a single rating per user.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
}
