package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientGetScheduleDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/schedules/known":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"scheduleId":"known","scheduleName":"Lab 1 Morning","startTime":"09:00","totalMin":60}`))
		case "/schedules/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	d, err := c.GetScheduleDetails(context.Background(), "known")
	assert.NoError(t, err)
	if assert.NotNil(t, d) {
		assert.Equal(t, "Lab 1 Morning", d.ScheduleName)
		assert.Equal(t, "09:00", d.StartTime)
		assert.Equal(t, 60, d.TotalMin)
	}

	d, err = c.GetScheduleDetails(context.Background(), "missing")
	assert.NoError(t, err, "a missing schedule is not a transport error")
	assert.Nil(t, d)

	_, err = c.GetScheduleDetails(context.Background(), "broken")
	assert.Error(t, err)
}
