package itinerary

import (
	"encoding/json"
	"sort"

	"wayfarer/models"
)

// ActivityPatch holds the optional fields of an activity update. Nil
// fields are left untouched.
type ActivityPatch struct {
	Name  *string          `json:"name,omitempty"`
	Time  *string          `json:"time,omitempty"`
	Cost  *int             `json:"cost,omitempty"`
	Place *json.RawMessage `json:"place,omitempty"`
}

// Add inserts an activity into the given day and returns the resulting
// schedule. The input schedule is never mutated; on error it is
// returned as-is so callers can keep using it. The day's activity list
// stays sorted ascending by time, with equal times preserving insertion
// order.
func Add(s models.Schedule, dayIndex int, activity models.Activity) (models.Schedule, error) {
	if err := checkDayIndex(s, dayIndex); err != nil {
		return s, err
	}
	if err := validateActivity(activity); err != nil {
		return s, err
	}

	out := s.Clone()
	day := &out.Days[dayIndex-1]
	pos := insertPosition(day.Activities, activity.Time)
	day.Activities = append(day.Activities, models.Activity{})
	copy(day.Activities[pos+1:], day.Activities[pos:])
	day.Activities[pos] = activity
	return out, nil
}

// Update applies a patch to one activity, re-sorts that day by time,
// and returns the resulting schedule. Patched fields are validated
// before anything is applied; a rejected call leaves the schedule
// unchanged.
func Update(s models.Schedule, dayIndex, activityIndex int, patch ActivityPatch) (models.Schedule, error) {
	if err := checkActivityIndex(s, dayIndex, activityIndex); err != nil {
		return s, err
	}

	updated := s.Days[dayIndex-1].Activities[activityIndex]
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Time != nil {
		updated.Time = *patch.Time
	}
	if patch.Cost != nil {
		updated.Cost = *patch.Cost
	}
	if patch.Place != nil {
		updated.Place = *patch.Place
	}
	if err := validateActivity(updated); err != nil {
		return s, err
	}

	out := s.Clone()
	day := &out.Days[dayIndex-1]
	day.Activities[activityIndex] = updated
	sortActivities(day.Activities)
	return out, nil
}

// Remove deletes one activity and returns the resulting schedule.
// Removal cannot disturb the day's time ordering.
func Remove(s models.Schedule, dayIndex, activityIndex int) (models.Schedule, error) {
	if err := checkActivityIndex(s, dayIndex, activityIndex); err != nil {
		return s, err
	}

	out := s.Clone()
	day := &out.Days[dayIndex-1]
	day.Activities = append(day.Activities[:activityIndex], day.Activities[activityIndex+1:]...)
	return out, nil
}

func checkDayIndex(s models.Schedule, dayIndex int) error {
	if dayIndex < 1 || dayIndex > len(s.Days) {
		return NewIndexError("day index %d out of range [1, %d]", dayIndex, len(s.Days))
	}
	return nil
}

func checkActivityIndex(s models.Schedule, dayIndex, activityIndex int) error {
	if err := checkDayIndex(s, dayIndex); err != nil {
		return err
	}
	count := len(s.Days[dayIndex-1].Activities)
	if activityIndex < 0 || activityIndex >= count {
		return NewIndexError("activity index %d out of range [0, %d) on day %d", activityIndex, count, dayIndex)
	}
	return nil
}

func validateActivity(a models.Activity) error {
	if a.Name == "" {
		return NewValidationError("activity name must not be empty")
	}
	if a.Cost < 0 {
		return NewValidationError("activity cost must be non-negative, got %d", a.Cost)
	}
	if _, err := timeToMinutes(a.Time); err != nil {
		return err
	}
	return nil
}

// insertPosition finds the stable insertion point for a time within an
// already-sorted activity list: after every entry with an equal or
// earlier time. Times in the list are known-valid.
func insertPosition(activities []models.Activity, clock string) int {
	minutes, _ := timeToMinutes(clock)
	return sort.Search(len(activities), func(i int) bool {
		m, _ := timeToMinutes(activities[i].Time)
		return m > minutes
	})
}

// sortActivities restores ascending time order, keeping the relative
// order of equal times.
func sortActivities(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		mi, _ := timeToMinutes(activities[i].Time)
		mj, _ := timeToMinutes(activities[j].Time)
		return mi < mj
	})
}
