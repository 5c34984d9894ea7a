package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"counter-api/internal/entities"
)

const (
	insertEntryQuery = `
INSERT INTO entries(entry_id, created_date_time, created_by_user_id, updated_date_time, updated_by_user_id, entry_date, entry, notes, is_estimate)
VALUES ($1, $2, $3, $2, $3, $4, $5, $6, $7)
RETURNING entry_id`

	getEntryQuery = `
SELECT entry_id, created_date_time, created_by_user_id, updated_date_time, updated_by_user_id, entry_date, entry, notes, is_estimate
FROM entries
WHERE entry_id = $1 AND deleted_date_time IS NULL`

	editEntryQuery = `
UPDATE entries
SET updated_date_time = $2, updated_by_user_id = $3, entry_date = $4, entry = $5, notes = $6, is_estimate = COALESCE($7, is_estimate)
WHERE entry_id = $1 AND deleted_date_time IS NULL
RETURNING entry_id`

	deleteEntryQuery = `
UPDATE entries
SET deleted_date_time = $2, deleted_by_user_id = $3
WHERE entry_id = $1 AND deleted_date_time IS NULL
RETURNING entry_id`

	listEntriesQuery = `
SELECT entry_id, created_date_time, created_by_user_id, updated_date_time, updated_by_user_id, entry_date, entry, notes, is_estimate
FROM entries
WHERE created_by_user_id = $1
  AND deleted_date_time IS NULL
  AND ($2 = '' OR notes ILIKE '%' || $2 || '%')
ORDER BY entry_date DESC, created_date_time DESC`
)

// EntryNew inserts an entry and returns its generated identifier.
func (p *Postgres) EntryNew(ctx context.Context, entry entities.EntryNew) (uuid.UUID, error) {
	var id uuid.UUID
	err := p.db.QueryRow(
		ctx,
		insertEntryQuery,
		uuid.New(),
		entry.CreatedDateTime,
		entry.CreatedByUserID,
		entry.EntryDate,
		entry.Entry,
		entry.Notes,
		entry.IsEstimate,
	).Scan(&id)
	if err != nil {
		p.log.Errorw("failed to insert entry", "error", err, "user_id", entry.CreatedByUserID)
		p.metrics.StorageFailures.WithLabelValues("entry_new").Inc()
		return uuid.Nil, fmt.Errorf("insert entry: %w", err)
	}

	p.log.Infow("entry created", "entry_id", id, "user_id", entry.CreatedByUserID)
	return id, nil
}

// EntryGet returns an entry by identifier. A missing row is reported as
// entities.ErrEntryNotFound, not as a fault.
func (p *Postgres) EntryGet(ctx context.Context, entryID uuid.UUID) (*entities.Entry, error) {
	var e entities.Entry
	err := p.db.QueryRow(ctx, getEntryQuery, entryID).Scan(
		&e.ID,
		&e.CreatedDateTime,
		&e.CreatedByUserID,
		&e.UpdatedDateTime,
		&e.UpdatedByUserID,
		&e.EntryDate,
		&e.Entry,
		&e.Notes,
		&e.IsEstimate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEntryNotFound
		}

		p.log.Errorw("failed to get entry", "error", err, "entry_id", entryID)
		p.metrics.StorageFailures.WithLabelValues("entry_get").Inc()
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return &e, nil
}

// EntryEdit updates the mutable fields of an entry. A vanished row is
// reported as entities.ErrEntryNotFound.
func (p *Postgres) EntryEdit(ctx context.Context, entry entities.EntryEdit) (uuid.UUID, error) {
	var id uuid.UUID
	err := p.db.QueryRow(
		ctx,
		editEntryQuery,
		entry.EntryID,
		entry.UpdatedDateTime,
		entry.UpdatedByUserID,
		entry.EntryDate,
		entry.Entry,
		entry.Notes,
		entry.IsEstimate,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, entities.ErrEntryNotFound
		}

		p.log.Errorw("failed to edit entry", "error", err, "entry_id", entry.EntryID)
		p.metrics.StorageFailures.WithLabelValues("entry_edit").Inc()
		return uuid.Nil, fmt.Errorf("edit entry: %w", err)
	}

	p.log.Infow("entry updated", "entry_id", id, "user_id", entry.UpdatedByUserID)
	return id, nil
}

// EntryDelete soft-deletes an entry, keeping the audit trail.
func (p *Postgres) EntryDelete(ctx context.Context, entry entities.EntryDelete) (uuid.UUID, error) {
	var id uuid.UUID
	err := p.db.QueryRow(
		ctx,
		deleteEntryQuery,
		entry.EntryID,
		entry.DeletedDateTime,
		entry.DeletedByUserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, entities.ErrEntryNotFound
		}

		p.log.Errorw("failed to delete entry", "error", err, "entry_id", entry.EntryID)
		p.metrics.StorageFailures.WithLabelValues("entry_delete").Inc()
		return uuid.Nil, fmt.Errorf("delete entry: %w", err)
	}

	p.log.Infow("entry deleted", "entry_id", id, "user_id", entry.DeletedByUserID)
	return id, nil
}

// EntryList returns the caller's entries, newest entry date first. An empty
// notesFilter matches everything; otherwise it is a case-insensitive
// substring match over notes.
func (p *Postgres) EntryList(ctx context.Context, ownerUserID, notesFilter string) ([]entities.Entry, error) {
	rows, err := p.db.Query(ctx, listEntriesQuery, ownerUserID, notesFilter)
	if err != nil {
		p.log.Errorw("failed to list entries", "error", err, "user_id", ownerUserID)
		p.metrics.StorageFailures.WithLabelValues("entry_list").Inc()
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Entry, 0)
	for rows.Next() {
		var e entities.Entry
		if err := rows.Scan(
			&e.ID,
			&e.CreatedDateTime,
			&e.CreatedByUserID,
			&e.UpdatedDateTime,
			&e.UpdatedByUserID,
			&e.EntryDate,
			&e.Entry,
			&e.Notes,
			&e.IsEstimate,
		); err != nil {
			p.log.Errorw("failed to scan entry row", "error", err, "user_id", ownerUserID)
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate entries", "error", err, "user_id", ownerUserID)
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return list, nil
}
