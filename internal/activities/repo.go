package activities

import (
	"context"
	"database/sql"
	"time"

	"roomcheckin/internal/checkin"
)

// Repository reads check-in records from Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FindRoomActivities returns records for the room and schedule within
// [from, to], oldest first.
func (r *Repository) FindRoomActivities(ctx context.Context, roomID int, scheduleID string, from, to time.Time) ([]checkin.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, room_schedule_id, class_room_id, user_id, check_in_at, check_in_type, created_at
		FROM room_check_ins
		WHERE class_room_id = $1 AND room_schedule_id = $2 AND check_in_at BETWEEN $3 AND $4
		ORDER BY check_in_at
	`, roomID, scheduleID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []checkin.Record
	for rows.Next() {
		var rec checkin.Record
		if err := rows.Scan(&rec.ID, &rec.RoomScheduleID, &rec.ClassRoomID, &rec.UserID, &rec.CheckInAt, &rec.CheckInType, &rec.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}
