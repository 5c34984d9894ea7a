// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/google/uuid"

	"counter-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EntryInterface exposes entry storage operations. Absence of a target row is
// reported as entities.ErrEntryNotFound, distinct from backend faults.
type EntryInterface interface {
	EntryNew(ctx context.Context, entry entities.EntryNew) (uuid.UUID, error)
	EntryGet(ctx context.Context, entryID uuid.UUID) (*entities.Entry, error)
	EntryEdit(ctx context.Context, entry entities.EntryEdit) (uuid.UUID, error)
	EntryDelete(ctx context.Context, entry entities.EntryDelete) (uuid.UUID, error)
	EntryList(ctx context.Context, ownerUserID, notesFilter string) ([]entities.Entry, error)
}

// UserInterface exposes the identity upsert. The update-or-insert runs as a
// single transaction so concurrent first-time logins cannot duplicate a user.
type UserInterface interface {
	UserSynchronise(ctx context.Context, user entities.UserSynchronise) error
}
