// Package api defines the transport request and response shapes.
package api

import (
	"time"

	"github.com/google/uuid"
)

// EntryDateLayout is the wire format for entry dates. Time-of-day is never
// carried; the calendar date alone identifies a listing group.
const EntryDateLayout = "2006-01-02"

// NewEntryRequest is the body of POST /entry. Pointer fields distinguish
// absent values from zero values for the validators.
type NewEntryRequest struct {
	EntryDate  string   `json:"entryDate"`
	Entry      *float64 `json:"entry"`
	Notes      *string  `json:"notes"`
	IsEstimate *bool    `json:"isEstimate"`
}

// EditEntryRequest is the body of PUT /entry/:entryId.
type EditEntryRequest struct {
	EntryDate  string   `json:"entryDate"`
	Entry      *float64 `json:"entry"`
	Notes      *string  `json:"notes"`
	IsEstimate *bool    `json:"isEstimate"`
}

// NewEntryResponse confirms a created entry.
type NewEntryResponse struct {
	EntryID uuid.UUID `json:"entryId"`
}

// EditEntryResponse confirms an updated entry.
type EditEntryResponse struct {
	EntryID uuid.UUID `json:"entryId"`
}

// DeleteEntryResponse confirms a deleted entry.
type DeleteEntryResponse struct {
	EntryID uuid.UUID `json:"entryId"`
}

// ViewEntryResponse is the full entry record.
type ViewEntryResponse struct {
	EntryID         uuid.UUID `json:"entryId"`
	EntryDate       string    `json:"entryDate"`
	Entry           int64     `json:"entry"`
	Notes           *string   `json:"notes"`
	IsEstimate      bool      `json:"isEstimate"`
	CreatedDateTime time.Time `json:"createdDateTime"`
	CreatedByUserID string    `json:"createdByUserId"`
	UpdatedDateTime time.Time `json:"updatedDateTime"`
	UpdatedByUserID string    `json:"updatedByUserId"`
}

// ListEntriesResponse groups entries by date, most recent date first.
type ListEntriesResponse struct {
	Groups []EntryGroup `json:"groups"`
}

// EntryGroup is one date bucket of a listing.
type EntryGroup struct {
	Name       string       `json:"name"`
	Total      int64        `json:"total"`
	IsEstimate bool         `json:"isEstimate"`
	Entries    []ListEntry  `json:"entries"`
}

// ListEntry is a single entry inside a listing group.
type ListEntry struct {
	EntryID    uuid.UUID `json:"entryId"`
	EntryDate  string    `json:"entryDate"`
	Entry      int64     `json:"entry"`
	Notes      *string   `json:"notes"`
	IsEstimate bool      `json:"isEstimate"`
}

// HelpAboutResponse describes the running service.
type HelpAboutResponse struct {
	Name               string `json:"name"`
	Version            string `json:"version"`
	SupportInformation string `json:"supportInformation"`
}

// ErrorResponse is the generic failure envelope for non-field errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes used by ErrorResponse.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL"
)

// ValidationProblem maps a request field to its violation messages, in the
// model-state style: {"entry": ["The request is not valid."]}.
type ValidationProblem map[string][]string
