package itinerary

import (
	"context"
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	sessions map[string]*models.PlanningSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*models.PlanningSession)}
}

func (m *memorySessionStore) Save(_ context.Context, session *models.PlanningSession) error {
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memorySessionStore) Load(_ context.Context, sessionID string) (*models.PlanningSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// stubSource returns a fixed candidate list.
type stubSource struct {
	candidates []models.Candidate
}

func (s *stubSource) Search(_ context.Context, _ string, _ int) ([]models.Candidate, error) {
	return s.candidates, nil
}

// memoryTripRepo records created trips.
type memoryTripRepo struct {
	trips map[string]*models.Trip
}

func newMemoryTripRepo() *memoryTripRepo {
	return &memoryTripRepo{trips: make(map[string]*models.Trip)}
}

func (m *memoryTripRepo) Create(_ context.Context, trip *models.Trip) error {
	m.trips[trip.ID] = trip
	return nil
}

func (m *memoryTripRepo) GetByID(_ context.Context, tripID string) (*models.Trip, error) {
	return m.trips[tripID], nil
}

func (m *memoryTripRepo) GetByUser(_ context.Context, _ string) ([]models.Trip, error) {
	return nil, nil
}

func (m *memoryTripRepo) MarkReminded(_ context.Context, tripID string) error {
	if t, ok := m.trips[tripID]; ok {
		t.Reminded = true
	}
	return nil
}

func (m *memoryTripRepo) Delete(_ context.Context, tripID string) error {
	delete(m.trips, tripID)
	return nil
}

func newTestService(candidates []models.Candidate) (*DefaultPlanningSessionService, *memoryTripRepo) {
	repo := newMemoryTripRepo()
	svc := &DefaultPlanningSessionService{
		Store:    newMemorySessionStore(),
		Source:   &stubSource{candidates: candidates},
		TripRepo: repo,
		Logger:   zap.NewNop(),
	}
	return svc, repo
}

func TestPlanningSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	candidates := []models.Candidate{
		{Name: "Museum", EstimatedCost: 50000},
		{Name: "Tower", EstimatedCost: 80000},
		{Name: "Garden", EstimatedCost: 90000},
		{Name: "Market", EstimatedCost: 30000},
	}

	t.Run("initiate allocates and caches", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			Destination: "kyoto",
			NumDays:     2,
			TotalFund:   200000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.SessionID)
		require.Len(t, session.Schedule.Days, 2)
		assert.Equal(t, 80000, GrandTotal(session.Schedule))

		loaded, err := svc.GetSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, session.Schedule, loaded.Schedule)
	})

	t.Run("supplied candidates bypass the source", func(t *testing.T) {
		svc, _ := newTestService(nil)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			NumDays:   1,
			TotalFund: 1000,
			Candidates: []models.Candidate{
				{Name: "Picnic", EstimatedCost: 400},
			},
		})
		require.NoError(t, err)
		require.Len(t, session.Schedule.Days[0].Activities, 1)
		assert.Equal(t, "Picnic", session.Schedule.Days[0].Activities[0].Name)
	})

	t.Run("invalid day count surfaces the configuration error", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		_, err := svc.InitiateSession(ctx, InitiateRequest{NumDays: 0, TotalFund: 1000})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("edits persist the new schedule", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			Destination: "kyoto", NumDays: 2, TotalFund: 200000,
		})
		require.NoError(t, err)

		updated, err := svc.AddActivity(ctx, session.SessionID, 2, models.Activity{
			Time: "14:00", Name: "Cafe", Cost: 2500,
		})
		require.NoError(t, err)
		require.Len(t, updated.Schedule.Days[1].Activities, 1)

		summary, err := svc.GetBudget(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 82500, summary.GrandTotal)

		removed, err := svc.RemoveActivity(ctx, session.SessionID, 2, 0)
		require.NoError(t, err)
		assert.Empty(t, removed.Schedule.Days[1].Activities)
	})

	t.Run("rejected edit leaves the cached schedule intact", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			Destination: "kyoto", NumDays: 2, TotalFund: 200000,
		})
		require.NoError(t, err)

		_, err = svc.AddActivity(ctx, session.SessionID, 1, models.Activity{
			Time: "14:00", Name: "", Cost: 5000,
		})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)

		loaded, err := svc.GetSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, session.Schedule, loaded.Schedule)
	})

	t.Run("confirm persists the trip and drops the session", func(t *testing.T) {
		svc, repo := newTestService(candidates)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			Destination: "kyoto", NumDays: 2, TotalFund: 200000,
		})
		require.NoError(t, err)

		trip, err := svc.ConfirmTrip(ctx, session.SessionID, models.TripMeta{
			Title:      "Kyoto in two days",
			Visibility: "private",
		})
		require.NoError(t, err)
		assert.Equal(t, session.Schedule, trip.Schedule)
		assert.Contains(t, repo.trips, trip.ID)

		_, err = svc.GetSession(ctx, session.SessionID)
		var notFound *SessionNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("confirm requires a title", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		session, err := svc.InitiateSession(ctx, InitiateRequest{
			Destination: "kyoto", NumDays: 1, TotalFund: 1000,
		})
		require.NoError(t, err)

		_, err = svc.ConfirmTrip(ctx, session.SessionID, models.TripMeta{})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, _ := newTestService(candidates)
		_, err := svc.GetSession(ctx, "missing")
		var notFound *SessionNotFoundError
		require.ErrorAs(t, err, &notFound)

		_, err = svc.GetBudget(ctx, "missing")
		require.ErrorAs(t, err, &notFound)
	})
}
