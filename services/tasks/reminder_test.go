package tasks

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/require"
)

func TestScheduleTripReminderSkips(t *testing.T) {
	// These paths return before touching the queue, so a nil client is safe.
	s := NewAsynqReminderScheduler(nil)

	t.Run("undated trip", func(t *testing.T) {
		trip := &models.Trip{
			ID:       "t1",
			Schedule: models.Schedule{Days: []models.Day{{DayIndex: 1}}},
		}
		require.NoError(t, s.ScheduleTripReminder(trip))
	})

	t.Run("no days at all", func(t *testing.T) {
		require.NoError(t, s.ScheduleTripReminder(&models.Trip{ID: "t2"}))
	})

	t.Run("start date already passed", func(t *testing.T) {
		trip := &models.Trip{
			ID: "t3",
			Schedule: models.Schedule{Days: []models.Day{
				{DayIndex: 1, Date: "2020-01-01"},
			}},
		}
		require.NoError(t, s.ScheduleTripReminder(trip))
	})

	t.Run("unparseable date errors", func(t *testing.T) {
		trip := &models.Trip{
			ID: "t4",
			Schedule: models.Schedule{Days: []models.Day{
				{DayIndex: 1, Date: "01/01/2030"},
			}},
		}
		require.Error(t, s.ScheduleTripReminder(trip))
	})
}
