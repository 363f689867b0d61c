package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomcheckin/internal/checkin"
)

// fakeRepo filters an in-memory record set the way the SQL query does.
type fakeRepo struct {
	records  []checkin.Record
	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeRepo) FindRoomActivities(ctx context.Context, roomID int, scheduleID string, from, to time.Time) ([]checkin.Record, error) {
	f.lastFrom, f.lastTo = from, to
	var res []checkin.Record
	for _, rec := range f.records {
		if rec.ClassRoomID != roomID || rec.RoomScheduleID != scheduleID {
			continue
		}
		if rec.CheckInAt.Before(from) || rec.CheckInAt.After(to) {
			continue
		}
		res = append(res, rec)
	}
	return res, nil
}

const scheduleID = "588ca14a-7482-4610-a816-ba3be58410f7"

func recordFor(userID int, at time.Time) checkin.Record {
	return checkin.Record{
		RoomScheduleID: scheduleID,
		ClassRoomID:    100,
		UserID:         userID,
		CheckInAt:      at,
		CheckInType:    checkin.TypeOnTime,
	}
}

func TestRoomActivitiesDayWindow(t *testing.T) {
	day := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{records: []checkin.Record{
		recordFor(1, day.Add(9*time.Hour)),
		recordFor(2, day.Add(9*time.Hour+20*time.Minute)),
		recordFor(3, day.Add(23*time.Hour+59*time.Minute+59*time.Second)),
		recordFor(4, day.AddDate(0, 0, 1)),                       // next day
		recordFor(5, day.AddDate(0, 0, -1).Add(12*time.Hour)),    // previous day
		{RoomScheduleID: scheduleID, ClassRoomID: 200, UserID: 6, CheckInAt: day.Add(9 * time.Hour)}, // other room
		{RoomScheduleID: "other", ClassRoomID: 100, UserID: 7, CheckInAt: day.Add(9 * time.Hour)},    // other schedule
	}}
	svc := NewService(repo)

	res, err := svc.RoomActivities(context.Background(), 100, scheduleID, day)

	assert.NoError(t, err)
	assert.Len(t, res, 3)
	for _, rec := range res {
		assert.Equal(t, 100, rec.ClassRoomID)
		assert.Equal(t, scheduleID, rec.RoomScheduleID)
	}
	assert.Equal(t, day, repo.lastFrom)
	assert.Equal(t, day.Add(23*time.Hour+59*time.Minute+59*time.Second), repo.lastTo)
}

func TestRoomActivitiesDefaultsToToday(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	now := time.Date(2023, 7, 4, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.RoomActivities(context.Background(), 100, scheduleID, time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), repo.lastFrom)
	assert.Equal(t, time.Date(2023, 7, 4, 23, 59, 59, 0, time.UTC), repo.lastTo)
}

func TestRoomActivitiesNonUTCDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	zone := time.FixedZone("UTC+7", 7*3600)
	_, err := svc.RoomActivities(context.Background(), 100, scheduleID, time.Date(2023, 7, 4, 1, 0, 0, 0, zone))

	// 2023-07-04 01:00 +07 is 2023-07-03 18:00 UTC; the UTC day wins.
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), repo.lastFrom)
}
