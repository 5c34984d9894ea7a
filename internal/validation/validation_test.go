package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func date(t *testing.T) *time.Time {
	t.Helper()
	d := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestNewEntry_ValueDomain(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{"positive integral", 10, true},
		{"negative integral", -10, true},
		{"upper boundary inside", 99999, true},
		{"lower boundary inside", -99999, true},
		{"zero", 0, true},
		{"positive fraction", 10.5, false},
		{"small fraction", 0.5, false},
		{"negative fraction", -10.5, false},
		{"upper boundary", 100000, false},
		{"lower boundary", -100000, false},
		{"beyond upper", 1000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := NewEntry(date(t), float(tt.value))
			if tt.valid {
				require.Empty(t, violations)
				return
			}
			require.Len(t, violations, 1)
			require.Equal(t, FieldEntry, violations[0].Field)
			require.Equal(t, MsgEntryOutOfRange, violations[0].Message)
		})
	}
}

func TestNewEntry_RequiredFields(t *testing.T) {
	violations := NewEntry(nil, nil)
	require.Len(t, violations, 2)

	byField := map[string]string{}
	for _, v := range violations {
		byField[v.Field] = v.Message
	}
	require.Equal(t, MsgEntryDateRequired, byField[FieldEntryDate])
	require.Equal(t, MsgEntryRequired, byField[FieldEntry])
}

func TestEditEntry_RequiresIdentifier(t *testing.T) {
	violations := EditEntry(uuid.Nil, date(t), float(10))
	require.Len(t, violations, 1)
	require.Equal(t, FieldEntryID, violations[0].Field)
	require.Equal(t, MsgEntryIdentifierRequired, violations[0].Message)
}

func TestEditEntry_Valid(t *testing.T) {
	require.Empty(t, EditEntry(uuid.New(), date(t), float(99999)))
}

func TestViewAndDelete_RequireIdentifier(t *testing.T) {
	require.Empty(t, ViewEntry(uuid.New()))
	require.Empty(t, DeleteEntry(uuid.New()))

	viewViolations := ViewEntry(uuid.Nil)
	require.Len(t, viewViolations, 1)
	require.Equal(t, MsgEntryIdentifierRequired, viewViolations[0].Message)

	deleteViolations := DeleteEntry(uuid.Nil)
	require.Len(t, deleteViolations, 1)
	require.Equal(t, FieldEntryID, deleteViolations[0].Field)
}

func TestListEntries_NoRules(t *testing.T) {
	require.Empty(t, ListEntries(""))
	require.Empty(t, ListEntries("groceries"))
}
