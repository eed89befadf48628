package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wayfarer/config"
	tripRepo "wayfarer/database/repository/trip"
	"wayfarer/models"
	"wayfarer/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo tripRepo.TripRepository) {
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
	mux.HandleFunc(tasks.TypeTripReminder, handleTripReminder(repo))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleTripReminder marks the trip as reminded; delivery to the user
// is the notification collaborator's job, fed off the trip record.
func handleTripReminder(repo tripRepo.TripRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TripReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderWorker] trip %s (%s) starts soon, marking reminded", p.TripID, p.Title)

		if err := repo.MarkReminded(ctx, p.TripID); err != nil {
			log.Printf("[ReminderWorker] failed to mark trip %s: %v", p.TripID, err)
			return err
		}
		return nil
	}
}
