package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"counter-api/internal/entities"
	"counter-api/internal/policy"
	"counter-api/internal/validation"
)

// NewEntry creates an entry for the acting user.
func (u *Usecase) NewEntry(
	ctx context.Context,
	identity entities.Identity,
	entryDate *time.Time,
	entry *float64,
	notes *string,
	isEstimate *bool,
) (uuid.UUID, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.auth.Authorize(ctx, policy.OperationNew, identity, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	if violations := validation.NewEntry(entryDate, entry); len(violations) > 0 {
		return uuid.Nil, entities.NewValidationError(violations...)
	}

	id, err := u.repo.EntryNew(ctx, entities.EntryNew{
		EntryDate:       dateOnly(*entryDate),
		Entry:           int64(*entry),
		Notes:           notes,
		IsEstimate:      isEstimate != nil && *isEstimate,
		CreatedByUserID: identity.UserID,
		CreatedDateTime: time.Now(),
	})
	if err != nil {
		u.log.Errorw("entry create failed", "error", err, "user_id", identity.UserID)
		return uuid.Nil, entities.ErrEntryNotCreated
	}

	u.log.Infow("entry create", "entry_id", id, "user_id", identity.UserID)
	return id, nil
}

// ViewEntry returns a single entry record.
func (u *Usecase) ViewEntry(ctx context.Context, identity entities.Identity, entryID uuid.UUID) (*entities.Entry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.auth.Authorize(ctx, policy.OperationView, identity, entryID); err != nil {
		return nil, err
	}
	if violations := validation.ViewEntry(entryID); len(violations) > 0 {
		return nil, entities.NewValidationError(violations...)
	}

	e, err := u.repo.EntryGet(ctx, entryID)
	if err != nil {
		u.log.Infow("entry view failed", "error", err, "entry_id", entryID)
		return nil, entities.ErrEntryNotFound
	}

	return e, nil
}

// EditEntry updates the date, value, notes and estimate flag of an entry.
// A nil isEstimate leaves the stored flag as it is.
func (u *Usecase) EditEntry(
	ctx context.Context,
	identity entities.Identity,
	entryID uuid.UUID,
	entryDate *time.Time,
	entry *float64,
	notes *string,
	isEstimate *bool,
) (uuid.UUID, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.auth.Authorize(ctx, policy.OperationEdit, identity, entryID); err != nil {
		return uuid.Nil, err
	}
	if violations := validation.EditEntry(entryID, entryDate, entry); len(violations) > 0 {
		return uuid.Nil, entities.NewValidationError(violations...)
	}

	id, err := u.repo.EntryEdit(ctx, entities.EntryEdit{
		EntryID:         entryID,
		EntryDate:       dateOnly(*entryDate),
		Entry:           int64(*entry),
		Notes:           notes,
		IsEstimate:      isEstimate,
		UpdatedByUserID: identity.UserID,
		UpdatedDateTime: time.Now(),
	})
	if err != nil {
		u.log.Infow("entry edit failed", "error", err, "entry_id", entryID)
		return uuid.Nil, entities.ErrEntryNotUpdated
	}

	u.log.Infow("entry edit", "entry_id", id, "user_id", identity.UserID)
	return id, nil
}

// DeleteEntry removes an entry, confirming the deleted identifier.
func (u *Usecase) DeleteEntry(ctx context.Context, identity entities.Identity, entryID uuid.UUID) (uuid.UUID, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.auth.Authorize(ctx, policy.OperationDelete, identity, entryID); err != nil {
		return uuid.Nil, err
	}
	if violations := validation.DeleteEntry(entryID); len(violations) > 0 {
		return uuid.Nil, entities.NewValidationError(violations...)
	}

	id, err := u.repo.EntryDelete(ctx, entities.EntryDelete{
		EntryID:         entryID,
		DeletedByUserID: identity.UserID,
		DeletedDateTime: time.Now(),
	})
	if err != nil {
		u.log.Infow("entry delete failed", "error", err, "entry_id", entryID)
		return uuid.Nil, entities.ErrEntryNotDeleted
	}

	u.log.Infow("entry delete", "entry_id", id, "user_id", identity.UserID)
	return id, nil
}

// ListEntries returns the caller's entries grouped by date, most recent date
// first. Storage failures are surfaced, not degraded to an empty listing.
func (u *Usecase) ListEntries(ctx context.Context, identity entities.Identity, notesFilter string) ([]entities.EntryGroup, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.auth.Authorize(ctx, policy.OperationList, identity, uuid.Nil); err != nil {
		return nil, err
	}
	if violations := validation.ListEntries(notesFilter); len(violations) > 0 {
		return nil, entities.NewValidationError(violations...)
	}

	entries, err := u.repo.EntryList(ctx, identity.UserID, notesFilter)
	if err != nil {
		u.log.Errorw("entry list failed", "error", err, "user_id", identity.UserID)
		return nil, fmt.Errorf("%w: %v", entities.ErrEntriesNotListed, err)
	}

	return buildGroups(entries), nil
}
