package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"roomcheckin/internal/checkin"
	"roomcheckin/internal/config"
	"roomcheckin/internal/metrics"
	"roomcheckin/internal/queue"
	"roomcheckin/internal/store"
	"roomcheckin/internal/summary"
)

// Worker consumes check-in events and folds them into per-schedule daily
// summary counters.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "checkin:events")
	}

	tally := summary.NewTally(redisClient.Client)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for check-in events...")
	for msg := range messages {
		if msg.Type != "checkin" {
			continue
		}

		var rec checkin.Record
		if err := json.Unmarshal(msg.Body, &rec); err != nil {
			log.Printf("bad check-in event payload: %v", err)
			continue
		}

		if err := tally.Record(ctx, rec); err != nil {
			log.Printf("summary update failed for schedule %s: %v", rec.RoomScheduleID, err)
			continue
		}
		metrics.SummaryEvents.Inc()
		log.Printf("recorded %s check-in for schedule %s room %d", rec.CheckInType, rec.RoomScheduleID, rec.ClassRoomID)
	}

	log.Println("worker stopped")
}
