package handlers_fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"counter-api/internal/api"
	"counter-api/internal/entities"
	"counter-api/internal/transport/http/middleware"
	"counter-api/internal/validation"
)

// Client-visible failure messages. Backend detail is logged, never returned.
const (
	MsgRequestNotValid  = "The request is not valid."
	MsgEntryNotCreated  = "The entry could not be created."
	MsgEntryNotFound    = "The entry could not be found."
	MsgEntryNotUpdated  = "The entry could not be updated."
	MsgEntryNotDeleted  = "The entry could not be deleted."
	MsgEntriesNotListed = "The entries could not be listed."
	MsgForbidden        = "forbidden"
	MsgInternal         = "An unexpected error occurred."
)

func writeError(c *fiber.Ctx, err error) error {
	if ve, ok := entities.AsValidationError(err); ok {
		return c.Status(http.StatusBadRequest).JSON(toProblem(ve))
	}

	switch {
	case errors.Is(err, entities.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(api.ErrorResponse{
			Error: api.ErrorDetail{Code: api.CodeForbidden, Message: MsgForbidden},
		})
	case errors.Is(err, entities.ErrEntryNotCreated):
		return entryProblem(c, MsgEntryNotCreated)
	case errors.Is(err, entities.ErrEntryNotFound):
		return entryProblem(c, MsgEntryNotFound)
	case errors.Is(err, entities.ErrEntryNotUpdated):
		return entryProblem(c, MsgEntryNotUpdated)
	case errors.Is(err, entities.ErrEntryNotDeleted):
		return entryProblem(c, MsgEntryNotDeleted)
	case errors.Is(err, entities.ErrUserNotSynchronised):
		return c.Status(http.StatusBadRequest).JSON(api.ValidationProblem{
			"user": {middleware.MsgUserNotSynchronised},
		})
	case errors.Is(err, entities.ErrEntriesNotListed):
		return c.Status(http.StatusInternalServerError).JSON(api.ErrorResponse{
			Error: api.ErrorDetail{Code: api.CodeInternal, Message: MsgEntriesNotListed},
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(api.ErrorResponse{
			Error: api.ErrorDetail{Code: api.CodeInternal, Message: MsgInternal},
		})
	}
}

// requestNotValid is the generic shape-failure response; per-field detail is
// deliberately withheld from the client.
func requestNotValid(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(api.ValidationProblem{
		validation.FieldEntry: {MsgRequestNotValid},
	})
}

func entryProblem(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(api.ValidationProblem{
		validation.FieldEntry: {msg},
	})
}

func toProblem(ve *entities.ValidationError) api.ValidationProblem {
	problem := make(api.ValidationProblem, len(ve.Violations))
	for _, v := range ve.Violations {
		problem[v.Field] = append(problem[v.Field], v.Message)
	}
	return problem
}

func parseEntryID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("entryId"))
}

// parseEntryDate accepts a calendar date, tolerating a full timestamp whose
// time-of-day is discarded. An empty value is absent, not malformed.
func parseEntryDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(api.EntryDateLayout, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}
