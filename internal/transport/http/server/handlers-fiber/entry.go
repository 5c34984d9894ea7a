package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"counter-api/internal/api"
	"counter-api/internal/mapper"
	"counter-api/internal/transport/http/middleware"
)

// NewEntry creates an entry for the acting user.
func (h *Handler) NewEntry(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return missingIdentity(c)
	}

	var body api.NewEntryRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Debugw("new entry body rejected", "error", err)
		return requestNotValid(c)
	}

	entryDate, err := parseEntryDate(body.EntryDate)
	if err != nil {
		h.log.Debugw("new entry date rejected", "error", err, "value", body.EntryDate)
		return requestNotValid(c)
	}

	id, err := h.uc.NewEntry(c.UserContext(), identity, entryDate, body.Entry, body.Notes, body.IsEstimate)
	if err != nil {
		h.log.Infow("new entry failed", "error", err, "user_id", identity.UserID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.NewEntryResponse{EntryID: id})
}

// ViewEntry returns a single entry record.
func (h *Handler) ViewEntry(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return missingIdentity(c)
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		h.log.Debugw("view entry identifier rejected", "error", err, "value", c.Params("entryId"))
		return requestNotValid(c)
	}

	entry, err := h.uc.ViewEntry(c.UserContext(), identity, entryID)
	if err != nil {
		h.log.Infow("view entry failed", "error", err, "entry_id", entryID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToViewEntryResponse(entry))
}

// EditEntry updates an entry's date, value, notes and estimate flag.
func (h *Handler) EditEntry(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return missingIdentity(c)
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		h.log.Debugw("edit entry identifier rejected", "error", err, "value", c.Params("entryId"))
		return requestNotValid(c)
	}

	var body api.EditEntryRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Debugw("edit entry body rejected", "error", err)
		return requestNotValid(c)
	}

	entryDate, err := parseEntryDate(body.EntryDate)
	if err != nil {
		h.log.Debugw("edit entry date rejected", "error", err, "value", body.EntryDate)
		return requestNotValid(c)
	}

	id, err := h.uc.EditEntry(c.UserContext(), identity, entryID, entryDate, body.Entry, body.Notes, body.IsEstimate)
	if err != nil {
		h.log.Infow("edit entry failed", "error", err, "entry_id", entryID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.EditEntryResponse{EntryID: id})
}

// DeleteEntry removes an entry and confirms the deleted identifier.
func (h *Handler) DeleteEntry(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return missingIdentity(c)
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		h.log.Debugw("delete entry identifier rejected", "error", err, "value", c.Params("entryId"))
		return requestNotValid(c)
	}

	id, err := h.uc.DeleteEntry(c.UserContext(), identity, entryID)
	if err != nil {
		h.log.Infow("delete entry failed", "error", err, "entry_id", entryID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.DeleteEntryResponse{EntryID: id})
}

// ListEntries returns the caller's entries grouped by date.
func (h *Handler) ListEntries(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return missingIdentity(c)
	}

	groups, err := h.uc.ListEntries(c.UserContext(), identity, c.Query("filter"))
	if err != nil {
		h.log.Infow("list entries failed", "error", err, "user_id", identity.UserID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToListEntriesResponse(groups))
}

func missingIdentity(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorDetail{Code: api.CodeUnauthorized, Message: "missing identity"},
	})
}
