package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"counter-api/internal/repository"
	"counter-api/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	EntryUsecaseInterface
	UserUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
