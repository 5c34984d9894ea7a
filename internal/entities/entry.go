// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a dated numeric ledger record owned by the user who created it.
type Entry struct {
	ID              uuid.UUID
	CreatedDateTime time.Time
	CreatedByUserID string
	UpdatedDateTime time.Time
	UpdatedByUserID string
	EntryDate       time.Time
	Entry           int64
	Notes           *string
	IsEstimate      bool
}

// EntryNew carries the fields needed to create an entry.
type EntryNew struct {
	EntryDate       time.Time
	Entry           int64
	Notes           *string
	IsEstimate      bool
	CreatedByUserID string
	CreatedDateTime time.Time
}

// EntryEdit carries the fields needed to update an entry. A nil IsEstimate
// leaves the stored flag unchanged.
type EntryEdit struct {
	EntryID         uuid.UUID
	EntryDate       time.Time
	Entry           int64
	Notes           *string
	IsEstimate      *bool
	UpdatedByUserID string
	UpdatedDateTime time.Time
}

// EntryDelete carries the fields recorded when an entry is deleted.
type EntryDelete struct {
	EntryID         uuid.UUID
	DeletedByUserID string
	DeletedDateTime time.Time
}

// EntryGroup is a derived, date-keyed bucket of entries produced for listings.
// It is never persisted.
type EntryGroup struct {
	Name       string
	Date       time.Time
	Total      int64
	IsEstimate bool
	Entries    []Entry
}
