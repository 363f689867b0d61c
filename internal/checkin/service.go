package checkin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"roomcheckin/internal/schedule"
)

// Store persists check-in records. Insert returns ErrDuplicateCheckIn when a
// record for the same (room schedule, class room, user) tuple already exists;
// the constraint is enforced by the store, not re-checked by the engine.
type Store interface {
	Insert(ctx context.Context, rec Record) (Record, error)
}

// Service is the check-in engine. It is stateless per request; the grace
// period is fixed at construction.
type Service struct {
	store           Store
	schedules       schedule.Lookup
	intervalMinutes int
	now             func() time.Time
}

// NewService creates the engine. intervalMinutes is the grace period below
// which an arrival after the nominal start still counts as on time.
func NewService(store Store, schedules schedule.Lookup, intervalMinutes int) *Service {
	if intervalMinutes <= 0 {
		intervalMinutes = 15
	}
	return &Service{
		store:           store,
		schedules:       schedules,
		intervalMinutes: intervalMinutes,
		now:             time.Now,
	}
}

// PerformCheckIn validates, classifies and persists one attempt. Each step is
// a hard gate: a rejection aborts the remaining steps and nothing is retried.
func (s *Service) PerformCheckIn(ctx context.Context, attempt Attempt, caller Caller) (Record, error) {
	if attempt.CheckInAt.IsZero() {
		attempt.CheckInAt = s.now().UTC()
	}
	if caller.ID != attempt.UserID {
		return Record{}, ErrNotAllowed
	}

	sched, err := s.schedules.GetScheduleDetails(ctx, attempt.RoomScheduleID)
	if err != nil {
		return Record{}, fmt.Errorf("schedule lookup: %w", err)
	}
	if sched == nil {
		return Record{}, ErrScheduleNotFound
	}

	kind, err := s.classify(attempt.CheckInAt, sched)
	if err != nil {
		return Record{}, err
	}
	attempt.CheckInType = kind

	rec, err := s.store.Insert(ctx, Record{
		RoomScheduleID: attempt.RoomScheduleID,
		ClassRoomID:    attempt.ClassRoomID,
		UserID:         attempt.UserID,
		CheckInAt:      attempt.CheckInAt,
		CheckInType:    attempt.CheckInType,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateCheckIn) {
			return Record{}, ErrAlreadyCheckedIn
		}
		return Record{}, fmt.Errorf("save check-in: %w", err)
	}
	return rec, nil
}

// classify compares the attempt against the slot's nominal start. Arriving
// before the nominal start yields a negative elapsed value and counts as on
// time.
func (s *Service) classify(at time.Time, sched *schedule.Details) (Type, error) {
	start, err := sched.NominalStart(at)
	if err != nil {
		return "", fmt.Errorf("schedule %s start time: %w", sched.ScheduleID, err)
	}
	elapsed := minutesBetween(start, at)
	switch {
	case elapsed >= sched.TotalMin:
		return "", ErrTooLate
	case elapsed >= s.intervalMinutes:
		return TypeLate, nil
	default:
		return TypeOnTime, nil
	}
}

// minutesBetween returns whole minutes from one instant to another, rounded
// toward negative infinity.
func minutesBetween(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from).Milliseconds()) / 60000))
}
