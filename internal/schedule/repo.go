package schedule

import (
	"context"
	"database/sql"
	"errors"
)

// Repository reads schedule slots from Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetScheduleDetails returns the slot for scheduleID, or (nil, nil) when no
// such slot exists.
func (r *Repository) GetScheduleDetails(ctx context.Context, scheduleID string) (*Details, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT schedule_id, schedule_name, start_time, total_min
		FROM schedule_rooms WHERE schedule_id = $1
	`, scheduleID)
	var d Details
	if err := row.Scan(&d.ScheduleID, &d.ScheduleName, &d.StartTime, &d.TotalMin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// UpsertSchedule creates or refreshes a slot. Used by seeding; the check-in
// path never writes schedules.
func (r *Repository) UpsertSchedule(ctx context.Context, d Details) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schedule_rooms (schedule_id, schedule_name, start_time, total_min)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (schedule_id) DO UPDATE SET
			schedule_name = EXCLUDED.schedule_name,
			start_time = EXCLUDED.start_time,
			total_min = EXCLUDED.total_min
	`, d.ScheduleID, d.ScheduleName, d.StartTime, d.TotalMin)
	return err
}
