package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxRangeLogs caps range queries to the most recent entries; the summary is
// computed over the same capped window, not the full history.
const maxRangeLogs = 30

type DailyLogService struct{ db *gorm.DB }

func NewDailyLogService(db *gorm.DB) *DailyLogService { return &DailyLogService{db: db} }

// DailyLogInput is the upsert payload. Intake and Burned are pointers so a
// missing field can be told apart from an explicit zero.
type DailyLogInput struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Intake  *int    `json:"intake"`
	Burned  *int    `json:"burned"`
	Workout *int    `json:"workout"`
	Steps   *int    `json:"steps"`
	Notes   *string `json:"notes"`
}

// DailyLogView is the stored entry plus the derived fields every response
// carries.
type DailyLogView struct {
	models.DailyLog
	NetCalories int    `json:"netCalories"`
	Day         string `json:"day"`
}

type LogSummary struct {
	TotalLogs   int `json:"totalLogs"`
	TotalIntake int `json:"totalIntake"`
	TotalBurned int `json:"totalBurned"`
	TotalNet    int `json:"totalNet"`
	AvgIntake   int `json:"avgIntake"`
	AvgBurned   int `json:"avgBurned"`
}

// DailyLogPatch is the partial-update payload; only non-nil fields are
// written.
type DailyLogPatch struct {
	Intake  *int    `json:"intake"`
	Burned  *int    `json:"burned"`
	Workout *int    `json:"workout"`
	Steps   *int    `json:"steps"`
	Notes   *string `json:"notes"`
}

func newView(l models.DailyLog) DailyLogView {
	return DailyLogView{DailyLog: l, NetCalories: l.NetCalories(), Day: l.Day()}
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// Summarize aggregates a window of logs. Averages round to the nearest
// integer; an empty window yields all zeros.
func Summarize(logs []models.DailyLog) LogSummary {
	sum := LogSummary{TotalLogs: len(logs)}
	for _, l := range logs {
		sum.TotalIntake += l.Intake
		sum.TotalBurned += l.Burned
	}
	sum.TotalNet = sum.TotalIntake - sum.TotalBurned
	if sum.TotalLogs > 0 {
		sum.AvgIntake = int(math.Round(float64(sum.TotalIntake) / float64(sum.TotalLogs)))
		sum.AvgBurned = int(math.Round(float64(sum.TotalBurned) / float64(sum.TotalLogs)))
	}
	return sum
}

// Upsert writes the user's log for the given day, replacing all mutable
// fields if one already exists. The write is a single ON CONFLICT statement
// keyed on (user_id, date), so a concurrent upsert for the same day cannot
// produce a duplicate row. The returned bool reports whether an existing log
// was updated.
func (s *DailyLogService) Upsert(ctx context.Context, userID uint, in DailyLogInput) (*DailyLogView, bool, error) {
	if in.Date == "" || in.Intake == nil || in.Burned == nil {
		return nil, false, validationErrorf("date, calories intake, and calories burned are required")
	}
	day, err := parseDay(in.Date)
	if err != nil {
		return nil, false, validationErrorf("date must be formatted as YYYY-MM-DD")
	}
	if *in.Intake < 0 || *in.Burned < 0 {
		return nil, false, validationErrorf("intake and burned must be non-negative")
	}

	entry := models.DailyLog{
		UserID: userID,
		Date:   day,
		Intake: *in.Intake,
		Burned: *in.Burned,
	}
	if in.Workout != nil {
		if *in.Workout < 0 {
			return nil, false, validationErrorf("workout minutes must be non-negative")
		}
		entry.Workout = *in.Workout
	}
	if in.Steps != nil {
		if *in.Steps < 0 {
			return nil, false, validationErrorf("steps must be non-negative")
		}
		entry.Steps = *in.Steps
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}

	// Pre-read only decides the created-vs-updated flag; the write below is
	// atomic either way.
	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("user_id = ? AND date = ?", userID, day).
		Count(&existing).Error; err != nil {
		return nil, false, err
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"intake", "burned", "workout", "steps", "notes", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return nil, false, err
	}

	// Re-read so the view reflects the stored row regardless of which branch
	// the conflict clause took.
	var stored models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&stored).Error; err != nil {
		return nil, false, err
	}

	view := newView(stored)
	return &view, existing > 0, nil
}

// Range returns the user's logs, optionally restricted to [start, end]
// inclusive, newest first, capped at maxRangeLogs, together with a summary
// over exactly the returned window.
func (s *DailyLogService) Range(ctx context.Context, userID uint, start, end *time.Time) ([]DailyLogView, LogSummary, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date < ?", dayStartLocal(*start), dayStartLocal(*end).Add(24*time.Hour))
	}

	var logs []models.DailyLog
	if err := q.Order("date DESC").Limit(maxRangeLogs).Find(&logs).Error; err != nil {
		return nil, LogSummary{}, err
	}

	views := make([]DailyLogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, newView(l))
	}
	return views, Summarize(logs), nil
}

// ByDate returns the single entry whose date falls within the calendar day of
// t, local time. The bool reports existence; a missing entry is not an error.
func (s *DailyLogService) ByDate(ctx context.Context, userID uint, t time.Time) (*DailyLogView, bool, error) {
	start := dayStartLocal(t)
	end := start.Add(24 * time.Hour)

	var log models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	view := newView(log)
	return &view, true, nil
}

// Today returns the entry for the current local calendar day, if any.
func (s *DailyLogService) Today(ctx context.Context, userID uint) (*DailyLogView, bool, error) {
	return s.ByDate(ctx, userID, time.Now())
}

// Update applies a partial merge of the provided fields to the log with the
// given id, scoped to the owning user. A miss on (id, user) yields
// ErrNotFound; ownership is enforced by the lookup itself.
func (s *DailyLogService) Update(ctx context.Context, userID, logID uint, patch DailyLogPatch) (*DailyLogView, error) {
	var log models.DailyLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for _, f := range []struct {
		name  string
		value *int
	}{
		{"intake", patch.Intake},
		{"burned", patch.Burned},
		{"workout", patch.Workout},
		{"steps", patch.Steps},
	} {
		if f.value == nil {
			continue
		}
		if *f.value < 0 {
			return nil, validationErrorf("%s must be non-negative", f.name)
		}
		updates[f.name] = *f.value
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&log).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).First(&log, log.ID).Error; err != nil {
			return nil, err
		}
	}

	view := newView(log)
	return &view, nil
}

// Delete removes the log with the given id, scoped to the owning user.
// The user's log collection is the foreign-key association, so it needs no
// separate cleanup and cannot desync from the row delete. Hard delete: a
// soft-deleted row would still hold the (user_id, date) unique slot.
func (s *DailyLogService) Delete(ctx context.Context, userID, logID uint) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.DailyLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
