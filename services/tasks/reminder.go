package tasks

import (
	"encoding/json"
	"time"

	"wayfarer/models"

	"github.com/hibiken/asynq"
)

const TypeTripReminder = "trip:reminder"

// reminderLead is how long before the trip's first day the reminder fires.
const reminderLead = 6 * time.Hour // 18:00 on the evening before

// AsynqReminderScheduler enqueues pre-trip reminder tasks on redis.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleTripReminder enqueues a reminder for the evening before the
// trip starts. Trips without a dated first day, or starting too soon
// for the lead time, get no reminder.
func (s *AsynqReminderScheduler) ScheduleTripReminder(trip *models.Trip) error {
	if len(trip.Schedule.Days) == 0 || trip.Schedule.Days[0].Date == "" {
		return nil
	}
	start, err := time.Parse("2006-01-02", trip.Schedule.Days[0].Date)
	if err != nil {
		return err
	}
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.TripReminderPayload{
		TripID:   trip.ID,
		UserID:   trip.UserID,
		Title:    trip.Meta.Title,
		FireDate: fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeTripReminder, b)
	_, err = s.Client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}
