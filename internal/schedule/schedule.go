package schedule

import (
	"context"
	"time"
)

// Details is a read-only snapshot of one schedule slot. Slots are created
// and maintained by an external administrative process; this service only
// reads them.
type Details struct {
	ScheduleID   string `json:"scheduleId"`
	ScheduleName string `json:"scheduleName"`
	StartTime    string `json:"startTime"` // wall clock "HH:MM"
	TotalMin     int    `json:"totalMin"`
}

// Lookup resolves a schedule id to its details. A missing schedule is a
// normal outcome and is reported as (nil, nil), never as an error.
type Lookup interface {
	GetScheduleDetails(ctx context.Context, scheduleID string) (*Details, error)
}

// NominalStart combines the UTC date of ref with the slot's HH:MM start.
// Seconds and below are zeroed.
func (d *Details) NominalStart(ref time.Time) (time.Time, error) {
	start, err := time.Parse("15:04", d.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	ref = ref.UTC()
	return time.Date(ref.Year(), ref.Month(), ref.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC), nil
}
