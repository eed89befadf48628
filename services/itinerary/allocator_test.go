package itinerary

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	t.Run("greedy single pass spreads candidates across days", func(t *testing.T) {
		candidates := []models.Candidate{
			{Name: "A", EstimatedCost: 50000},
			{Name: "B", EstimatedCost: 80000},
			{Name: "C", EstimatedCost: 90000},
			{Name: "D", EstimatedCost: 30000},
		}

		schedule, err := Allocate(candidates, 2, 200000, "")
		require.NoError(t, err)
		require.Len(t, schedule.Days, 2)

		// Daily budget 100000: A fits (remaining 50000), B and C are
		// discarded as unaffordable, D fits (remaining 20000).
		day1 := schedule.Days[0]
		require.Len(t, day1.Activities, 2)
		assert.Equal(t, "A", day1.Activities[0].Name)
		assert.Equal(t, "09:00", day1.Activities[0].Time)
		assert.Equal(t, "D", day1.Activities[1].Name)
		assert.Equal(t, "10:00", day1.Activities[1].Time)
		assert.Equal(t, 80000, DayTotal(day1))

		day2 := schedule.Days[1]
		assert.Empty(t, day2.Activities)
		assert.Equal(t, 0, DayTotal(day2))

		assert.Equal(t, 80000, GrandTotal(schedule))
	})

	t.Run("zero fund leaves every day empty", func(t *testing.T) {
		candidates := []models.Candidate{
			{Name: "A", EstimatedCost: 1000},
			{Name: "B", EstimatedCost: 2000},
		}

		schedule, err := Allocate(candidates, 3, 0, "")
		require.NoError(t, err)
		require.Len(t, schedule.Days, 3)
		for _, day := range schedule.Days {
			assert.Empty(t, day.Activities)
		}
		assert.Equal(t, 0, GrandTotal(schedule))
	})

	t.Run("day indices are 1-based and contiguous", func(t *testing.T) {
		schedule, err := Allocate(nil, 5, 100000, "")
		require.NoError(t, err)
		require.Len(t, schedule.Days, 5)
		for i, day := range schedule.Days {
			assert.Equal(t, i+1, day.DayIndex)
		}
	})

	t.Run("start date stamps consecutive dates", func(t *testing.T) {
		schedule, err := Allocate(nil, 3, 0, "2026-12-30")
		require.NoError(t, err)
		assert.Equal(t, "2026-12-30", schedule.Days[0].Date)
		assert.Equal(t, "2026-12-31", schedule.Days[1].Date)
		assert.Equal(t, "2027-01-01", schedule.Days[2].Date)
	})

	t.Run("total placed never exceeds the fund", func(t *testing.T) {
		candidates := []models.Candidate{
			{Name: "A", EstimatedCost: 30000},
			{Name: "B", EstimatedCost: 30000},
			{Name: "C", EstimatedCost: 30000},
			{Name: "D", EstimatedCost: 30000},
			{Name: "E", EstimatedCost: 30000},
		}
		schedule, err := Allocate(candidates, 2, 100000, "")
		require.NoError(t, err)
		assert.LessOrEqual(t, GrandTotal(schedule), 100000)
	})

	t.Run("a day consumes candidates until its budget is spent", func(t *testing.T) {
		// Daily budget 50: X leaves day 1 with 10 remaining, so Y and Z
		// are both consumed and discarded there; day 2 sees nothing.
		candidates := []models.Candidate{
			{Name: "X", EstimatedCost: 40},
			{Name: "Y", EstimatedCost: 40},
			{Name: "Z", EstimatedCost: 45},
		}
		schedule, err := Allocate(candidates, 2, 100, "")
		require.NoError(t, err)
		require.Len(t, schedule.Days[0].Activities, 1)
		assert.Equal(t, "X", schedule.Days[0].Activities[0].Name)
		assert.Empty(t, schedule.Days[1].Activities)
	})

	t.Run("invalid day count is a configuration error", func(t *testing.T) {
		for _, numDays := range []int{0, -1} {
			_, err := Allocate(nil, numDays, 1000, "")
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		}
	})

	t.Run("negative candidate cost rejects the whole call", func(t *testing.T) {
		candidates := []models.Candidate{
			{Name: "A", EstimatedCost: 1000},
			{Name: "B", EstimatedCost: -5},
		}
		schedule, err := Allocate(candidates, 2, 10000, "")
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Empty(t, schedule.Days)
	})

	t.Run("malformed start date is a validation error", func(t *testing.T) {
		_, err := Allocate(nil, 1, 0, "next tuesday")
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("activities are time-ordered by construction", func(t *testing.T) {
		candidates := make([]models.Candidate, 6)
		for i := range candidates {
			candidates[i] = models.Candidate{Name: "P", EstimatedCost: 10}
		}
		schedule, err := Allocate(candidates, 1, 1000, "")
		require.NoError(t, err)
		assertSorted(t, schedule)
	})
}

// assertSorted checks the engine's core ordering invariant on every day.
func assertSorted(t *testing.T, s models.Schedule) {
	t.Helper()
	for _, day := range s.Days {
		for i := 1; i < len(day.Activities); i++ {
			prev, err := timeToMinutes(day.Activities[i-1].Time)
			require.NoError(t, err)
			cur, err := timeToMinutes(day.Activities[i].Time)
			require.NoError(t, err)
			assert.LessOrEqual(t, prev, cur, "day %d out of order at %d", day.DayIndex, i)
		}
	}
}
