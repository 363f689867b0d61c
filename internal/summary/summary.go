package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roomcheckin/internal/checkin"
)

// retention bounds how long daily counters are kept.
const retention = 45 * 24 * time.Hour

// Tally maintains per-schedule, per-day classification counters in Redis.
// The worker feeds it from the check-in event stream.
type Tally struct {
	client *redis.Client
}

// NewTally creates a tally.
func NewTally(client *redis.Client) *Tally {
	return &Tally{client: client}
}

func key(scheduleID string, day time.Time, kind checkin.Type) string {
	return fmt.Sprintf("summary:%s:%s:%s", scheduleID, day.UTC().Format("2006-01-02"), kind)
}

// Record bumps the counter for one persisted check-in.
func (t *Tally) Record(ctx context.Context, rec checkin.Record) error {
	k := key(rec.RoomScheduleID, rec.CheckInAt, rec.CheckInType)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, retention)
	_, err := pipe.Exec(ctx)
	return err
}

// DayCounts returns the on-time and late counts for one schedule and day.
func (t *Tally) DayCounts(ctx context.Context, scheduleID string, day time.Time) (onTime, late int64, err error) {
	vals, err := t.client.MGet(ctx, key(scheduleID, day, checkin.TypeOnTime), key(scheduleID, day, checkin.TypeLate)).Result()
	if err != nil {
		return 0, 0, err
	}
	parse := func(v interface{}) int64 {
		s, ok := v.(string)
		if !ok {
			return 0
		}
		var n int64
		fmt.Sscanf(s, "%d", &n)
		return n
	}
	return parse(vals[0]), parse(vals[1]), nil
}
