package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog is one user's nutrition/activity record for one calendar day.
// Date is truncated to local midnight; the composite unique index enforces
// at most one log per user per day.
type DailyLog struct {
	gorm.Model
	UserID  uint      `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date    time.Time `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	Intake  int       `gorm:"not null" json:"intake"`   // kcal consumed
	Burned  int       `gorm:"not null" json:"burned"`   // kcal expended
	Workout int       `gorm:"default:0" json:"workout"` // minutes
	Steps   int       `gorm:"default:0" json:"steps"`
	Notes   string    `gorm:"type:text" json:"notes"`
}

// NetCalories is the day's surplus (positive) or deficit (negative).
func (l DailyLog) NetCalories() int { return l.Intake - l.Burned }

// Day formats the log date as YYYY-MM-DD.
func (l DailyLog) Day() string { return l.Date.Format("2006-01-02") }
