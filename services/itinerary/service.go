package itinerary

import (
	"context"
	"fmt"
	"time"

	tripRepo "wayfarer/database/repository/trip"
	"wayfarer/models"
	"wayfarer/services/places"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues a pre-trip reminder for a confirmed trip.
// Implemented by the tasks package; nil disables reminders.
type ReminderScheduler interface {
	ScheduleTripReminder(trip *models.Trip) error
}

// DefaultPlanningSessionService implements PlanningSessionService on a
// session store, a candidate source, and the trip repository.
type DefaultPlanningSessionService struct {
	Store     SessionStore
	Source    places.CandidateSource
	TripRepo  tripRepo.TripRepository
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// InitiateSession fetches candidates (unless supplied), runs the
// allocator, and caches the resulting session.
func (svc *DefaultPlanningSessionService) InitiateSession(ctx context.Context, req InitiateRequest) (*models.PlanningSession, error) {
	candidates := req.Candidates
	if len(candidates) == 0 && req.Destination != "" {
		fetched, err := svc.Source.Search(ctx, req.Destination, req.Limit)
		if err != nil {
			return nil, fmt.Errorf("fetching candidates for %q: %w", req.Destination, err)
		}
		candidates = fetched
	}

	schedule, err := Allocate(candidates, req.NumDays, req.TotalFund, req.StartDate)
	if err != nil {
		return nil, err
	}

	session := &models.PlanningSession{
		SessionID:  uuid.New().String(),
		UserID:     req.UserID,
		Candidates: candidates,
		Schedule:   schedule,
		CreatedAt:  time.Now().UTC(),
	}
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("caching planning session: %w", err)
	}

	svc.Logger.Info("planning session initiated",
		zap.String("sessionID", session.SessionID),
		zap.Int("numDays", req.NumDays),
		zap.Int("totalFund", req.TotalFund),
		zap.Int("candidates", len(candidates)),
	)
	return session, nil
}

// GetSession returns the current state of a planning session.
func (svc *DefaultPlanningSessionService) GetSession(ctx context.Context, sessionID string) (*models.PlanningSession, error) {
	return svc.Store.Load(ctx, sessionID)
}

// AddActivity applies the pure add operation and stores the new schedule.
func (svc *DefaultPlanningSessionService) AddActivity(ctx context.Context, sessionID string, dayIndex int, activity models.Activity) (*models.PlanningSession, error) {
	return svc.edit(ctx, sessionID, func(s models.Schedule) (models.Schedule, error) {
		return Add(s, dayIndex, activity)
	})
}

// UpdateActivity applies the pure update operation and stores the new schedule.
func (svc *DefaultPlanningSessionService) UpdateActivity(ctx context.Context, sessionID string, dayIndex, activityIndex int, patch ActivityPatch) (*models.PlanningSession, error) {
	return svc.edit(ctx, sessionID, func(s models.Schedule) (models.Schedule, error) {
		return Update(s, dayIndex, activityIndex, patch)
	})
}

// RemoveActivity applies the pure remove operation and stores the new schedule.
func (svc *DefaultPlanningSessionService) RemoveActivity(ctx context.Context, sessionID string, dayIndex, activityIndex int) (*models.PlanningSession, error) {
	return svc.edit(ctx, sessionID, func(s models.Schedule) (models.Schedule, error) {
		return Remove(s, dayIndex, activityIndex)
	})
}

// edit loads the session, applies one schedule operation, and stores
// whatever schedule comes back. Edits are last-writer-wins at this
// layer; the operations themselves never mutate their input.
func (svc *DefaultPlanningSessionService) edit(ctx context.Context, sessionID string, op func(models.Schedule) (models.Schedule, error)) (*models.PlanningSession, error) {
	session, err := svc.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := op(session.Schedule)
	if err != nil {
		return nil, err
	}
	session.Schedule = updated

	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("storing planning session: %w", err)
	}
	return session, nil
}

// GetBudget returns per-day totals and the grand total for the session.
func (svc *DefaultPlanningSessionService) GetBudget(ctx context.Context, sessionID string) (*models.BudgetSummary, error) {
	session, err := svc.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(session.Schedule)
	return &summary, nil
}

// ConfirmTrip attaches trip metadata, persists the final schedule, and
// drops the session. Persistence takes ownership of the schedule value.
func (svc *DefaultPlanningSessionService) ConfirmTrip(ctx context.Context, sessionID string, meta models.TripMeta) (*models.Trip, error) {
	session, err := svc.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if meta.Title == "" {
		return nil, NewValidationError("trip title must not be empty")
	}

	trip := &models.Trip{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		Meta:      meta,
		Schedule:  session.Schedule,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.TripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("persisting trip: %w", err)
	}

	if svc.Reminders != nil {
		if err := svc.Reminders.ScheduleTripReminder(trip); err != nil {
			// The trip is already saved; a failed reminder is not fatal.
			svc.Logger.Warn("failed to schedule trip reminder",
				zap.String("tripID", trip.ID), zap.Error(err))
		}
	}

	if err := svc.Store.Delete(ctx, sessionID); err != nil {
		svc.Logger.Warn("failed to drop confirmed session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	svc.Logger.Info("trip confirmed",
		zap.String("tripID", trip.ID),
		zap.String("sessionID", sessionID),
		zap.Int("grandTotal", GrandTotal(trip.Schedule)),
	)
	return trip, nil
}

// CancelSession discards a planning session.
func (svc *DefaultPlanningSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return svc.Store.Delete(ctx, sessionID)
}
