package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clinic/config"
	notificationRepo "clinic/database/repository/notification"
	"clinic/models"
	"clinic/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background and
// returns a stop function for graceful shutdown.
func InitReminderWorker(notifRepo notificationRepo.NotificationRepository) func() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifRepo))

	// Start Redis health monitor
	stop := make(chan struct{})
	monitorClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	go monitorRedisConnection(monitorClient, 10*time.Second, stop)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	return func() {
		close(stop)
		srv.Shutdown()
	}
}

// handleReminderTask writes an outbox notification for the appointment.
// Downstream delivery channels consume the notifications collection.
func handleReminderTask(notifRepo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		n := models.Notification{
			ID:        uuid.New().String(),
			BookingID: p.BookingID,
			Title:     "Appointment reminder",
			Body:      fmt.Sprintf("Upcoming appointment with doctor %s on %s at %s", p.DoctorID, p.Date, p.Time),
			CreatedAt: time.Now(),
		}
		if err := notifRepo.Insert(ctx, n); err != nil {
			log.Printf("[ReminderHandler] failed to write notification: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder recorded for booking %s (%s %s)", p.BookingID, p.Date, p.Time)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at
// runtime. It owns the client and closes it when stop is closed.
func monitorRedisConnection(client *redis.Client, interval time.Duration, stop <-chan struct{}) {
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := context.Background()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("[ReminderWorker] redis connection lost: %v", err)
			}
		}
	}
}
