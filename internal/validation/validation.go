// Package validation applies per-operation business rules. Ownership is not
// checked here; that is the policy package's responsibility.
package validation

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"counter-api/internal/entities"
)

// Violation messages surfaced to clients, field-scoped.
const (
	MsgEntryDateRequired       = "The entry date parameter is required."
	MsgEntryRequired           = "The entry parameter is required."
	MsgEntryOutOfRange         = "The entry parameter is out of range."
	MsgEntryIdentifierRequired = "The entry identifier parameter is required."
)

// Field names used in violation responses.
const (
	FieldEntry     = "entry"
	FieldEntryDate = "entryDate"
	FieldEntryID   = "entryId"
)

// entryValueLimit bounds the magnitude of an entry value: five significant
// digits, no fractional part.
const entryValueLimit = 100_000

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// entryvalue: integral and |value| < 100000.
	_ = v.RegisterValidation("entryvalue", func(fl validator.FieldLevel) bool {
		value := fl.Field().Float()
		if value != math.Trunc(value) {
			return false
		}
		return value > -entryValueLimit && value < entryValueLimit
	})
	return v
}

type newEntryRules struct {
	EntryDate *time.Time `validate:"required"`
	Entry     *float64   `validate:"required,entryvalue"`
}

type editEntryRules struct {
	EntryID   uuid.UUID  `validate:"required"`
	EntryDate *time.Time `validate:"required"`
	Entry     *float64   `validate:"required,entryvalue"`
}

type entryIdentifierRules struct {
	EntryID uuid.UUID `validate:"required"`
}

// NewEntry checks the create rules: date required, value required, integral
// and within range.
func NewEntry(entryDate *time.Time, entry *float64) []entities.FieldViolation {
	return collect(validate.Struct(newEntryRules{EntryDate: entryDate, Entry: entry}))
}

// EditEntry checks the edit rules: identifier, date and value.
func EditEntry(entryID uuid.UUID, entryDate *time.Time, entry *float64) []entities.FieldViolation {
	return collect(validate.Struct(editEntryRules{EntryID: entryID, EntryDate: entryDate, Entry: entry}))
}

// ViewEntry checks that the target identifier is present.
func ViewEntry(entryID uuid.UUID) []entities.FieldViolation {
	return collect(validate.Struct(entryIdentifierRules{EntryID: entryID}))
}

// DeleteEntry checks that the target identifier is present.
func DeleteEntry(entryID uuid.UUID) []entities.FieldViolation {
	return collect(validate.Struct(entryIdentifierRules{EntryID: entryID}))
}

// ListEntries has no required fields; the notes filter is unconstrained.
func ListEntries(notesFilter string) []entities.FieldViolation {
	_ = notesFilter
	return nil
}

func collect(err error) []entities.FieldViolation {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []entities.FieldViolation{{Field: FieldEntry, Message: MsgEntryOutOfRange}}
	}

	violations := make([]entities.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, toViolation(fe))
	}
	return violations
}

func toViolation(fe validator.FieldError) entities.FieldViolation {
	switch fe.StructField() {
	case "EntryDate":
		return entities.FieldViolation{Field: FieldEntryDate, Message: MsgEntryDateRequired}
	case "EntryID":
		return entities.FieldViolation{Field: FieldEntryID, Message: MsgEntryIdentifierRequired}
	default:
		if fe.Tag() == "entryvalue" {
			return entities.FieldViolation{Field: FieldEntry, Message: MsgEntryOutOfRange}
		}
		return entities.FieldViolation{Field: FieldEntry, Message: MsgEntryRequired}
	}
}
