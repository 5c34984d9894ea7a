package domain

import (
	"sort"

	"counter-api/internal/entities"
)

// groupNameLayout renders the group's date the way the listing presents it,
// en-GB short date.
const groupNameLayout = "02/01/2006"

// buildGroups buckets entries by calendar date. Groups come out ordered by
// date descending; within a group the storage order is preserved. A single
// estimated entry marks the whole group as an estimate.
func buildGroups(entries []entities.Entry) []entities.EntryGroup {
	groups := make([]entities.EntryGroup, 0)
	index := make(map[string]int)

	for _, e := range entries {
		date := dateOnly(e.EntryDate)
		key := date.Format(groupNameLayout)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, entities.EntryGroup{Name: key, Date: date})
		}

		groups[i].Total += e.Entry
		groups[i].IsEstimate = groups[i].IsEstimate || e.IsEstimate
		groups[i].Entries = append(groups[i].Entries, e)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})

	return groups
}
