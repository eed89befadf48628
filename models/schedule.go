package models

import "encoding/json"

// Activity is a single planned stop within a day.
type Activity struct {
	Time  string          `bson:"time" json:"time"`                       // "HH:MM", 24h, local to the day
	Name  string          `bson:"name" json:"name"`                       // Non-empty display name
	Cost  int             `bson:"cost" json:"cost"`                       // Estimated cost, whole currency units, >= 0
	Place json.RawMessage `bson:"place,omitempty" json:"place,omitempty"` // Opaque place payload, stored verbatim, never inspected
}

// Day is one unit of the itinerary with its own ordered activity list.
type Day struct {
	DayIndex   int        `bson:"day" json:"day"` // 1-based, contiguous across the schedule
	Date       string     `bson:"date,omitempty" json:"date,omitempty"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Schedule is the complete plan for one trip. Values are treated as
// immutable: every editing operation returns a fresh Schedule and leaves
// its input untouched.
type Schedule struct {
	Days      []Day `bson:"days" json:"days"`
	TotalFund int   `bson:"totalFund" json:"totalFund"`
}

// Clone returns a deep copy of the schedule. Place payloads are shared;
// they are opaque and never written through.
func (s Schedule) Clone() Schedule {
	out := Schedule{
		Days:      make([]Day, len(s.Days)),
		TotalFund: s.TotalFund,
	}
	for i, d := range s.Days {
		acts := make([]Activity, len(d.Activities))
		copy(acts, d.Activities)
		out.Days[i] = Day{
			DayIndex:   d.DayIndex,
			Date:       d.Date,
			Activities: acts,
		}
	}
	return out
}
