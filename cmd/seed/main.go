package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"roomcheckin/internal/config"
	"roomcheckin/internal/schedule"
	"roomcheckin/internal/store"
	"roomcheckin/internal/users"
)

// Seed loads demo users and schedule slots for local development.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "zaq1@WSX"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	userRepo := users.NewRepository(db.Client)
	for _, u := range []struct{ email, name string }{
		{"javier@example.com", "Javier Benavides"},
		{"john@example.com", "John Smith"},
		{"jack@example.com", "Jack Sparrow"},
	} {
		if err := userRepo.Upsert(ctx, u.email, u.name, string(hash)); err != nil {
			log.Fatalf("seed user %s: %v", u.email, err)
		}
		log.Printf("seeded user %s", u.email)
	}

	schedRepo := schedule.NewRepository(db.Client)
	for _, s := range []schedule.Details{
		{ScheduleID: uuid.NewString(), ScheduleName: "Lab 1 Morning", StartTime: "09:00", TotalMin: 60},
		{ScheduleID: uuid.NewString(), ScheduleName: "Lab 2 Morning", StartTime: "09:00", TotalMin: 90},
		{ScheduleID: uuid.NewString(), ScheduleName: "Lab 3 Afternoon", StartTime: "14:30", TotalMin: 90},
	} {
		if err := schedRepo.UpsertSchedule(ctx, s); err != nil {
			log.Fatalf("seed schedule %s: %v", s.ScheduleName, err)
		}
		log.Printf("seeded schedule %s (%s)", s.ScheduleName, s.ScheduleID)
	}

	log.Println("seeding done")
}
