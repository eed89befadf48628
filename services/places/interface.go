package places

import (
	"context"

	"wayfarer/models"
)

// CandidateSource supplies ordered candidate places for a destination.
// Ordering is the source's concern (relevance, proximity); the planner
// treats it as a priority order.
type CandidateSource interface {
	Search(ctx context.Context, query string, limit int) ([]models.Candidate, error)
}
