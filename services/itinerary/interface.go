package itinerary

import (
	"context"

	"wayfarer/models"
)

// InitiateRequest carries everything needed to open a planning session.
// Candidates may be supplied directly; otherwise Destination is sent to
// the candidate source.
type InitiateRequest struct {
	UserID      string             `json:"userId,omitempty"`
	Destination string             `json:"destination,omitempty"`
	NumDays     int                `json:"numDays"`
	TotalFund   int                `json:"totalFund"`
	StartDate   string             `json:"startDate,omitempty"` // "YYYY-MM-DD", optional
	Candidates  []models.Candidate `json:"candidates,omitempty"`
	Limit       int                `json:"limit,omitempty"` // max candidates to fetch from the source
}

// PlanningSessionService manages the lifecycle of a plan between
// allocation and confirmation. Every edit applies a pure schedule
// operation and stores the returned value; whichever write lands last
// is the session's current schedule.
type PlanningSessionService interface {
	InitiateSession(ctx context.Context, req InitiateRequest) (*models.PlanningSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.PlanningSession, error)
	AddActivity(ctx context.Context, sessionID string, dayIndex int, activity models.Activity) (*models.PlanningSession, error)
	UpdateActivity(ctx context.Context, sessionID string, dayIndex, activityIndex int, patch ActivityPatch) (*models.PlanningSession, error)
	RemoveActivity(ctx context.Context, sessionID string, dayIndex, activityIndex int) (*models.PlanningSession, error)
	GetBudget(ctx context.Context, sessionID string) (*models.BudgetSummary, error)
	ConfirmTrip(ctx context.Context, sessionID string, meta models.TripMeta) (*models.Trip, error)
	CancelSession(ctx context.Context, sessionID string) error
}
