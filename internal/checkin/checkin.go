package checkin

import "time"

// Type classifies the punctuality of a successful check-in.
type Type string

const (
	TypeOnTime Type = "ON_TIME"
	TypeLate   Type = "LATE"
)

// Attempt is the unit of work submitted to the engine. CheckInType is
// assigned by the engine; a caller-supplied value is overwritten.
type Attempt struct {
	RoomScheduleID string
	ClassRoomID    int
	UserID         int
	CheckInAt      time.Time
	CheckInType    Type
}

// Record is the durable form of a successful attempt. At most one record
// exists per (room schedule, class room, user) tuple.
type Record struct {
	ID             int64     `json:"id"`
	RoomScheduleID string    `json:"roomScheduleId"`
	ClassRoomID    int       `json:"classRoomId"`
	UserID         int       `json:"userId"`
	CheckInAt      time.Time `json:"checkInAt"`
	CheckInType    Type      `json:"checkInType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Caller is the authenticated identity performing the attempt.
type Caller struct {
	ID    int
	Email string
	Name  string
}
