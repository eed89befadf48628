package models

import "time"

// TripMeta carries the trip-level fields attached at confirmation time.
// None of it is interpreted by the planning engine.
type TripMeta struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Visibility  string `bson:"visibility,omitempty" json:"visibility,omitempty"` // e.g. "public", "private"
	Transport   string `bson:"transport,omitempty" json:"transport,omitempty"`   // e.g. "car", "train"
	CoverImage  string `bson:"coverImage,omitempty" json:"coverImage,omitempty"` // URL supplied by the upload collaborator
}

// Trip is a confirmed itinerary as persisted: the final Schedule plus
// the confirmation metadata.
type Trip struct {
	ID        string    `bson:"id" json:"id"` // UUID
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Meta      TripMeta  `bson:"meta" json:"meta"`
	Schedule  Schedule  `bson:"schedule" json:"schedule"`
	Reminded  bool      `bson:"reminded" json:"reminded"` // Set by the reminder worker once the pre-trip reminder fired
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PlanningSession holds the in-progress plan between allocation and
// confirmation. It lives in the session cache, keyed by SessionID.
type PlanningSession struct {
	SessionID  string      `json:"sessionId"`
	UserID     string      `json:"userId,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
	Schedule   Schedule    `json:"schedule"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// BudgetSummary is the aggregator's view of a schedule for display
// and confirmation screens.
type BudgetSummary struct {
	DayTotals  []int `json:"dayTotals"`
	GrandTotal int   `json:"grandTotal"`
	TotalFund  int   `json:"totalFund"`
	Remaining  int   `json:"remaining"`
}

// TripReminderPayload is the asynq task payload for pre-trip reminders.
type TripReminderPayload struct {
	TripID   string `json:"tripId"`
	UserID   string `json:"userId,omitempty"`
	Title    string `json:"title"`
	FireDate string `json:"fireDate"`
}
