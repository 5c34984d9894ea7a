// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"counter-api/config"
	"counter-api/internal/metrics"
	"counter-api/internal/repository/postgres"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	EntryInterface
	UserInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, m *metrics.Metrics) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg, m), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
