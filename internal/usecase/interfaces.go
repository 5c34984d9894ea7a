package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"counter-api/internal/entities"
)

// EntryUsecaseInterface abstracts entry operations for the delivery layer.
// Optional request fields arrive as pointers so the business validators can
// distinguish absent from zero.
type EntryUsecaseInterface interface {
	NewEntry(ctx context.Context, identity entities.Identity, entryDate *time.Time, entry *float64, notes *string, isEstimate *bool) (uuid.UUID, error)
	ViewEntry(ctx context.Context, identity entities.Identity, entryID uuid.UUID) (*entities.Entry, error)
	EditEntry(ctx context.Context, identity entities.Identity, entryID uuid.UUID, entryDate *time.Time, entry *float64, notes *string, isEstimate *bool) (uuid.UUID, error)
	DeleteEntry(ctx context.Context, identity entities.Identity, entryID uuid.UUID) (uuid.UUID, error)
	ListEntries(ctx context.Context, identity entities.Identity, notesFilter string) ([]entities.EntryGroup, error)
}

// UserUsecaseInterface abstracts the per-request identity upsert.
type UserUsecaseInterface interface {
	SynchroniseUser(ctx context.Context, identity entities.Identity) error
}
