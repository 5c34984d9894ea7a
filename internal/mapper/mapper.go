// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"counter-api/internal/api"
	"counter-api/internal/entities"
)

// ToViewEntryResponse maps a full entry record to its transport model.
func ToViewEntryResponse(e *entities.Entry) api.ViewEntryResponse {
	return api.ViewEntryResponse{
		EntryID:         e.ID,
		EntryDate:       e.EntryDate.Format(api.EntryDateLayout),
		Entry:           e.Entry,
		Notes:           e.Notes,
		IsEstimate:      e.IsEstimate,
		CreatedDateTime: e.CreatedDateTime,
		CreatedByUserID: e.CreatedByUserID,
		UpdatedDateTime: e.UpdatedDateTime,
		UpdatedByUserID: e.UpdatedByUserID,
	}
}

// ToListEntriesResponse maps aggregated groups to the listing transport model.
func ToListEntriesResponse(groups []entities.EntryGroup) api.ListEntriesResponse {
	out := make([]api.EntryGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, toEntryGroup(g))
	}
	return api.ListEntriesResponse{Groups: out}
}

func toEntryGroup(g entities.EntryGroup) api.EntryGroup {
	entries := make([]api.ListEntry, 0, len(g.Entries))
	for _, e := range g.Entries {
		entries = append(entries, toListEntry(e))
	}
	return api.EntryGroup{
		Name:       g.Name,
		Total:      g.Total,
		IsEstimate: g.IsEstimate,
		Entries:    entries,
	}
}

func toListEntry(e entities.Entry) api.ListEntry {
	return api.ListEntry{
		EntryID:    e.ID,
		EntryDate:  e.EntryDate.Format(api.EntryDateLayout),
		Entry:      e.Entry,
		Notes:      e.Notes,
		IsEstimate: e.IsEstimate,
	}
}
