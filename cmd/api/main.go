package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roomcheckin/internal/activities"
	"roomcheckin/internal/auth"
	"roomcheckin/internal/checkin"
	"roomcheckin/internal/config"
	"roomcheckin/internal/httpmiddleware"
	"roomcheckin/internal/metrics"
	"roomcheckin/internal/queue"
	"roomcheckin/internal/schedule"
	"roomcheckin/internal/store"
	"roomcheckin/internal/users"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "checkin:events")
	}

	// The schedule directory is DB-backed by default; deployments that keep
	// schedules in a separate service point SCHEDULE_DIRECTORY_URL at it.
	var schedules schedule.Lookup
	if cfg.ScheduleDirectoryURL != "" {
		schedules = schedule.NewClient(cfg.ScheduleDirectoryURL)
		log.Printf("using remote schedule directory at %s", cfg.ScheduleDirectoryURL)
	} else {
		schedules = schedule.NewRepository(db.Client)
	}

	checkInRepo := checkin.NewRepository(db.Client)
	engine := checkin.NewService(checkInRepo, schedules, cfg.IntervalMinutes)
	activitySvc := activities.NewService(activities.NewRepository(db.Client))
	userSvc := users.NewService(users.NewRepository(db.Client))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		redisHealthy := redisClient.Healthy(c.Request.Context())
		dbHealthy := db.Client.PingContext(c.Request.Context()) == nil
		status := http.StatusOK
		if !redisHealthy || !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
	})

	r.POST("/v1/auth/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		u, err := userSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}

		tokens, err := auth.Issue(u.ID, u.Email, u.Name, cfg.JWTIssuer, cfg.JWTSigningKey, cfg.AccessTTL, cfg.RefreshTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
			"expires_at":    tokens.AccessExp.Unix(),
		})
	})

	authGroup := r.Group("/v1", auth.UserAuth(cfg.JWTSigningKey, cfg.JWTIssuer))

	authGroup.POST("/check-in", func(c *gin.Context) {
		var req struct {
			ClassRoomID    int        `json:"classRoomId" binding:"required"`
			RoomScheduleID string     `json:"roomScheduleId" binding:"required"`
			UserID         int        `json:"userId" binding:"required"`
			CheckInAt      *time.Time `json:"checkInAt"`
			CheckInType    string     `json:"checkInType"` // advisory only, the engine decides
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := uuid.Parse(req.RoomScheduleID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomScheduleId must be a UUID"})
			return
		}

		claims, ok := auth.FromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}
		caller := checkin.Caller{ID: claims.UserID, Email: claims.Email, Name: claims.Name}

		attempt := checkin.Attempt{
			RoomScheduleID: req.RoomScheduleID,
			ClassRoomID:    req.ClassRoomID,
			UserID:         req.UserID,
		}
		if req.CheckInAt != nil {
			attempt.CheckInAt = req.CheckInAt.UTC()
		}

		rec, err := engine.PerformCheckIn(c.Request.Context(), attempt, caller)
		if err != nil {
			metrics.CheckIns.WithLabelValues(outcomeLabel(err)).Inc()
			if checkin.IsRejection(err) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			log.Printf("check-in failed for user %d schedule %s: %v", claims.UserID, req.RoomScheduleID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in could not be saved"})
			return
		}

		metrics.CheckIns.WithLabelValues(string(rec.CheckInType)).Inc()

		if body, err := json.Marshal(rec); err == nil {
			if err := q.Publish(c.Request.Context(), queue.Message{Type: "checkin", Body: body}); err != nil {
				log.Printf("queue publish failed: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Check-in successful."})
	})

	authGroup.GET("/activities", func(c *gin.Context) {
		metrics.ActivityQueries.Inc()

		roomID, err := strconv.Atoi(c.Query("roomId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId must be an integer"})
			return
		}
		scheduleID := c.Query("scheduleId")
		if _, err := uuid.Parse(scheduleID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scheduleId must be a UUID"})
			return
		}
		var date time.Time
		if v := c.Query("date"); v != "" {
			date, err = time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date must be yyyy-mm-dd"})
				return
			}
		}

		recs, err := activitySvc.RoomActivities(c.Request.Context(), roomID, scheduleID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if recs == nil {
			recs = []checkin.Record{}
		}
		c.JSON(http.StatusOK, gin.H{"activities": recs})
	})

	authGroup.GET("/users", func(c *gin.Context) {
		list, err := userSvc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, checkin.ErrNotAllowed):
		return "not_allowed"
	case errors.Is(err, checkin.ErrScheduleNotFound):
		return "schedule_not_found"
	case errors.Is(err, checkin.ErrTooLate):
		return "too_late"
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		return "already_checked_in"
	default:
		return "internal_error"
	}
}

// CORS middleware for browser requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
