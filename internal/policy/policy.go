// Package policy decides whether the acting user may operate on an entry.
// Ownership is anchored on the entry's creator and never changes; an entry
// that cannot be found is authorized here so the execution stage can report
// it as not found instead of masking it behind a 403.
package policy

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"counter-api/internal/entities"
)

// Operation enumerates the request kinds the policy dispatches over.
type Operation int

const (
	// OperationNew creates an entry.
	OperationNew Operation = iota
	// OperationView reads a single entry.
	OperationView
	// OperationEdit updates an entry.
	OperationEdit
	// OperationDelete removes an entry.
	OperationDelete
	// OperationList reads the caller's own entries.
	OperationList
)

// EntryGetter is the single read the ownership check needs.
type EntryGetter interface {
	EntryGet(ctx context.Context, entryID uuid.UUID) (*entities.Entry, error)
}

type decision func(a *Authorizer, ctx context.Context, identity entities.Identity, entryID uuid.UUID) error

// handlers is the dispatch table keyed by operation. Create and list are
// always allowed; they only ever touch rows scoped to the caller.
var handlers = map[Operation]decision{
	OperationNew:    allow,
	OperationList:   allow,
	OperationView:   requireOwnership,
	OperationEdit:   requireOwnership,
	OperationDelete: requireOwnership,
}

// Authorizer evaluates ownership decisions against storage.
type Authorizer struct {
	store EntryGetter
	log   *zap.SugaredLogger
}

// New constructs an Authorizer.
func New(store EntryGetter, log *zap.SugaredLogger) *Authorizer {
	return &Authorizer{store: store, log: log.Named("policy")}
}

// Authorize grants or denies the operation for the acting user. It performs
// at most one read-only storage call and is safe to evaluate repeatedly.
func (a *Authorizer) Authorize(ctx context.Context, op Operation, identity entities.Identity, entryID uuid.UUID) error {
	handler, ok := handlers[op]
	if !ok {
		return entities.ErrForbidden
	}
	return handler(a, ctx, identity, entryID)
}

func allow(*Authorizer, context.Context, entities.Identity, uuid.UUID) error {
	return nil
}

func requireOwnership(a *Authorizer, ctx context.Context, identity entities.Identity, entryID uuid.UUID) error {
	entry, err := a.store.EntryGet(ctx, entryID)
	if err != nil {
		// Absent or unreadable entries are delegated: the execution stage
		// reports not-found, which must not be disguised as a denial.
		a.log.Debugw("ownership lookup did not resolve, delegating", "entry_id", entryID, "error", err)
		return nil
	}

	if entry.CreatedByUserID == identity.UserID {
		return nil
	}

	a.log.Infow("ownership denied", "entry_id", entryID, "user_id", identity.UserID)
	return entities.ErrForbidden
}
