// Package domain orchestrates the per-request pipeline: authorize, validate
// business rules, execute storage. Stages run strictly in order and a failure
// at any stage stops the rest.
package domain

import (
	"context"
	"time"

	"go.uber.org/zap"

	"counter-api/internal/policy"
	"counter-api/internal/repository"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	auth    *policy.Authorizer
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		auth:    policy.New(repo, log),
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// dateOnly discards the time-of-day component of an entry date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
