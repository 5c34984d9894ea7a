package domain

import (
	"context"
	"time"

	"counter-api/internal/entities"
)

// SynchroniseUser upserts the caller's identity claims into the user store.
// It runs once per authenticated request, before the target operation; a
// failure aborts the whole request.
func (u *Usecase) SynchroniseUser(ctx context.Context, identity entities.Identity) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	err := u.repo.UserSynchronise(ctx, entities.UserSynchronise{
		UserID:          identity.UserID,
		Name:            identity.Name,
		Email:           identity.Email,
		UpdatedDateTime: time.Now(),
	})
	if err != nil {
		u.log.Errorw("user synchronise failed", "error", err, "user_id", identity.UserID)
		return entities.ErrUserNotSynchronised
	}

	return nil
}
