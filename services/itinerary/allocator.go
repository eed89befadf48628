package itinerary

import (
	"time"

	"wayfarer/models"
)

// allocationStartMinutes is the clock position of the first activity
// placed on each day (09:00); each subsequent activity lands one hour
// later.
const allocationStartMinutes = 9 * 60

// Allocate builds an initial schedule by spreading candidates across
// numDays under totalFund. The fund is split evenly into a per-day
// budget and candidates are consumed in a single forward pass in
// source order: an affordable candidate is placed on the current day,
// an unaffordable one is discarded outright rather than deferred to a
// later day. Leftover budget never carries across days, so days may
// end up empty.
//
// startDate, when non-empty, must be a "2006-01-02" date; consecutive
// dates are stamped onto the days.
func Allocate(candidates []models.Candidate, numDays int, totalFund int, startDate string) (models.Schedule, error) {
	if numDays < 1 {
		return models.Schedule{}, NewConfigurationError("numDays must be at least 1, got %d", numDays)
	}
	if totalFund < 0 {
		return models.Schedule{}, NewConfigurationError("totalFund must be non-negative, got %d", totalFund)
	}
	for i, cand := range candidates {
		if cand.EstimatedCost < 0 {
			return models.Schedule{}, NewValidationError("candidate %d (%s) has negative estimated cost %d", i, cand.Name, cand.EstimatedCost)
		}
	}
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			return models.Schedule{}, NewValidationError("malformed start date %q, expected YYYY-MM-DD", startDate)
		}
	}

	schedule := models.Schedule{
		Days:      expandDays(startDate, numDays),
		TotalFund: totalFund,
	}

	dailyBudget := totalFund / numDays
	next := 0 // index of the next unconsumed candidate
	for d := range schedule.Days {
		remaining := dailyBudget
		for remaining > 0 && next < len(candidates) {
			cand := candidates[next]
			next++
			if cand.EstimatedCost > remaining {
				// Discarded, not deferred: the pass never revisits a candidate.
				continue
			}
			placed := len(schedule.Days[d].Activities)
			schedule.Days[d].Activities = append(schedule.Days[d].Activities, models.Activity{
				Time:  minutesToTime(allocationStartMinutes + placed*60),
				Name:  cand.Name,
				Cost:  cand.EstimatedCost,
				Place: cand.Place,
			})
			remaining -= cand.EstimatedCost
		}
	}

	return schedule, nil
}

// expandDays seeds the day list with 1-based contiguous indices and,
// when a start date is given, consecutive dates.
func expandDays(startDate string, numDays int) []models.Day {
	days := make([]models.Day, numDays)
	start, _ := time.Parse("2006-01-02", startDate)
	for i := range days {
		days[i] = models.Day{
			DayIndex:   i + 1,
			Activities: []models.Activity{},
		}
		if startDate != "" {
			days[i].Date = start.AddDate(0, 0, i).Format("2006-01-02")
		}
	}
	return days
}
