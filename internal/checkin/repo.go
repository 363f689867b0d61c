package checkin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

// Repository persists check-in records in Postgres. The table carries a
// unique index on (room_schedule_id, class_room_id, user_id); concurrent
// inserts for the same tuple serialize there and the losers see
// ErrDuplicateCheckIn.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new record and returns it with the storage-assigned id.
func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO room_check_ins (room_schedule_id, class_room_id, user_id, check_in_at, check_in_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rec.RoomScheduleID, rec.ClassRoomID, rec.UserID, rec.CheckInAt, rec.CheckInType)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Record{}, ErrDuplicateCheckIn
		}
		return Record{}, err
	}
	return rec, nil
}
