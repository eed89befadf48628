package itinerary

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetAggregation(t *testing.T) {
	schedule := models.Schedule{
		TotalFund: 200000,
		Days: []models.Day{
			{DayIndex: 1, Activities: []models.Activity{
				{Time: "09:00", Name: "A", Cost: 50000},
				{Time: "10:00", Name: "D", Cost: 30000},
			}},
			{DayIndex: 2, Activities: []models.Activity{}},
		},
	}

	t.Run("day and grand totals", func(t *testing.T) {
		assert.Equal(t, 80000, DayTotal(schedule.Days[0]))
		assert.Equal(t, 0, DayTotal(schedule.Days[1]))
		assert.Equal(t, 80000, GrandTotal(schedule))
	})

	t.Run("grand total is idempotent", func(t *testing.T) {
		first := GrandTotal(schedule)
		second := GrandTotal(schedule)
		assert.Equal(t, first, second)
	})

	t.Run("summary includes remaining fund", func(t *testing.T) {
		summary := Summarize(schedule)
		assert.Equal(t, []int{80000, 0}, summary.DayTotals)
		assert.Equal(t, 80000, summary.GrandTotal)
		assert.Equal(t, 200000, summary.TotalFund)
		assert.Equal(t, 120000, summary.Remaining)
	})

	t.Run("allocator output conserves placed costs", func(t *testing.T) {
		candidates := []models.Candidate{
			{Name: "A", EstimatedCost: 50000},
			{Name: "B", EstimatedCost: 80000},
			{Name: "C", EstimatedCost: 90000},
			{Name: "D", EstimatedCost: 30000},
		}
		allocated, err := Allocate(candidates, 2, 200000, "")
		require.NoError(t, err)

		placed := 0
		for _, day := range allocated.Days {
			for _, a := range day.Activities {
				placed += a.Cost
			}
		}
		assert.Equal(t, placed, GrandTotal(allocated))
	})
}
