package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"counter-api/internal/entities"
)

const (
	updateUserQuery = `
UPDATE users
SET name = $2, email = $3, updated_date_time = $4
WHERE user_id = $1`

	insertUserQuery = `
INSERT INTO users(user_id, name, email, created_date_time, updated_date_time)
VALUES ($1, $2, $3, $4, $4)`
)

// uniqueViolation is the Postgres error code raised when two first-time
// logins race on the users primary key.
const uniqueViolation = "23505"

// UserSynchronise reconciles the identity claims with the stored user row:
// update by subject id, insert when no row was affected. The whole sequence
// runs in one transaction.
func (p *Postgres) UserSynchronise(ctx context.Context, user entities.UserSynchronise) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.log.Errorw("failed to begin user synchronise", "error", err, "user_id", user.UserID)
		p.metrics.StorageFailures.WithLabelValues("user_synchronise").Inc()
		return fmt.Errorf("begin user synchronise: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, updateUserQuery, user.UserID, user.Name, user.Email, user.UpdatedDateTime)
	if err != nil {
		p.log.Errorw("failed to update user", "error", err, "user_id", user.UserID)
		p.metrics.StorageFailures.WithLabelValues("user_synchronise").Inc()
		return fmt.Errorf("update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, insertUserQuery, user.UserID, user.Name, user.Email, user.UpdatedDateTime); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				// Lost a race against a concurrent first login; the row now
				// exists, so fall back to updating it.
				return p.resyncExisting(ctx, user)
			}

			p.log.Errorw("failed to insert user", "error", err, "user_id", user.UserID)
			p.metrics.StorageFailures.WithLabelValues("user_synchronise").Inc()
			return fmt.Errorf("insert user: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		p.log.Errorw("failed to commit user synchronise", "error", err, "user_id", user.UserID)
		p.metrics.StorageFailures.WithLabelValues("user_synchronise").Inc()
		return fmt.Errorf("commit user synchronise: %w", err)
	}

	return nil
}

func (p *Postgres) resyncExisting(ctx context.Context, user entities.UserSynchronise) error {
	tag, err := p.db.Exec(ctx, updateUserQuery, user.UserID, user.Name, user.Email, user.UpdatedDateTime)
	if err != nil {
		return fmt.Errorf("update user after insert race: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user after insert race: no row")
	}
	return nil
}
