package itinerary

import "wayfarer/models"

// DayTotal sums the activity costs of one day.
func DayTotal(day models.Day) int {
	total := 0
	for _, a := range day.Activities {
		total += a.Cost
	}
	return total
}

// GrandTotal sums the activity costs across the whole schedule.
func GrandTotal(s models.Schedule) int {
	total := 0
	for _, d := range s.Days {
		total += DayTotal(d)
	}
	return total
}

// Summarize builds the aggregator view used by display and
// confirmation screens.
func Summarize(s models.Schedule) models.BudgetSummary {
	summary := models.BudgetSummary{
		DayTotals: make([]int, len(s.Days)),
		TotalFund: s.TotalFund,
	}
	for i, d := range s.Days {
		summary.DayTotals[i] = DayTotal(d)
		summary.GrandTotal += summary.DayTotals[i]
	}
	summary.Remaining = s.TotalFund - summary.GrandTotal
	return summary
}
