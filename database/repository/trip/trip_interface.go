package tripRepo

import (
	"context"

	"wayfarer/models"
)

// TripRepository defines persistence for confirmed trips. The stored
// document is the schedule wire structure plus confirmation metadata;
// the repository never reinterprets schedule internals.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, tripID string) (*models.Trip, error)
	GetByUser(ctx context.Context, userID string) ([]models.Trip, error)
	MarkReminded(ctx context.Context, tripID string) error
	Delete(ctx context.Context, tripID string) error
}
