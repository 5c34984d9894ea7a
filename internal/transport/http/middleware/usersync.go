package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"counter-api/internal/api"
	"counter-api/internal/usecase"
)

// MsgUserNotSynchronised is the request-level failure surfaced when the
// identity upsert fails.
const MsgUserNotSynchronised = "The user details could not be synchronised."

// UserSynchronise reconciles the identity claims with the user store before
// any entry operation runs. Synchronisation is a precondition, not a
// best-effort side task: on failure the request is aborted.
func UserSynchronise(uc usecase.UserUsecaseInterface, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := Identity(c)
		if !ok {
			log.Warnw("user synchronise without identity", "path", c.Path())
			return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
				Error: api.ErrorDetail{Code: api.CodeUnauthorized, Message: "missing identity"},
			})
		}

		if err := uc.SynchroniseUser(c.UserContext(), identity); err != nil {
			log.Errorw("user synchronise aborted request", "error", err, "user_id", identity.UserID)
			return c.Status(http.StatusBadRequest).JSON(api.ValidationProblem{
				"user": {MsgUserNotSynchronised},
			})
		}

		return c.Next()
	}
}
