package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckIns counts check-in attempts by outcome: on_time, late, or one of the
// rejection reasons.
var CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "checkin_attempts_total",
	Help: "Check-in attempts by outcome.",
}, []string{"outcome"})

// ActivityQueries counts activity report requests.
var ActivityQueries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "activity_queries_total",
	Help: "Room activity queries served.",
})

// SummaryEvents counts check-in events processed by the summary worker.
var SummaryEvents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "summary_events_total",
	Help: "Check-in events folded into daily summaries.",
})
