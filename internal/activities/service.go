package activities

import (
	"context"
	"time"

	"roomcheckin/internal/checkin"
)

// Repo reads persisted check-in records for reporting.
type Repo interface {
	FindRoomActivities(ctx context.Context, roomID int, scheduleID string, from, to time.Time) ([]checkin.Record, error)
}

// Service answers room activity queries. Read only; it never touches the
// check-in engine.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService creates a service backed by a repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RoomActivities returns every record for the room and schedule whose
// check-in timestamp falls within the UTC day of date. A zero date means
// today.
func (s *Service) RoomActivities(ctx context.Context, roomID int, scheduleID string, date time.Time) ([]checkin.Record, error) {
	if date.IsZero() {
		date = s.now()
	}
	from, to := dayWindow(date)
	return s.repo.FindRoomActivities(ctx, roomID, scheduleID, from, to)
}

// dayWindow returns [00:00:00, 23:59:59] UTC for the date's day.
func dayWindow(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}
