package actions

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"plex-playlist-download/internal/plex"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// The accepted --order-by keys, mapped to typed accessors. Resolving the
// key up front keeps the sort reflection-free and fails before anything
// is downloaded.
var stringKeys = map[string]func(plex.Metadata) string{
	"title":            func(m plex.Metadata) string { return m.Title },
	"grandparentTitle": func(m plex.Metadata) string { return m.GrandparentTitle },
	"parentTitle":      func(m plex.Metadata) string { return m.ParentTitle },
	"type":             func(m plex.Metadata) string { return m.Type },
	"ratingKey":        func(m plex.Metadata) string { return m.RatingKey },
}

var numericKeys = map[string]func(plex.Metadata) int64{
	"addedAt":     func(m plex.Metadata) int64 { return int64(m.AddedAt) },
	"updatedAt":   func(m plex.Metadata) int64 { return int64(m.UpdatedAt) },
	"duration":    func(m plex.Metadata) int64 { return int64(m.Duration) },
	"year":        func(m plex.Metadata) int64 { return int64(m.Year) },
	"index":       func(m plex.Metadata) int64 { return int64(m.Index) },
	"parentIndex": func(m plex.Metadata) int64 { return int64(m.ParentIndex) },
	"viewOffset":  func(m plex.Metadata) int64 { return int64(m.ViewOffset) },
	"viewCount": func(m plex.Metadata) int64 {
		n, _ := m.ViewCount.Int64()
		return n
	},
}

// SortKeys returns every accepted sort key name, sorted.
func SortKeys() []string {
	keys := make([]string, 0, len(stringKeys)+len(numericKeys))
	for key := range stringKeys {
		keys = append(keys, key)
	}
	for key := range numericKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// OrderItems returns items sorted ascending by the named attribute, or
// the input order untouched when sortKey is empty. The sort is stable:
// equal keys keep their stored relative order.
func OrderItems(items []plex.Metadata, sortKey string) ([]plex.Metadata, error) {
	if sortKey == "" {
		return items, nil
	}

	sorted := make([]plex.Metadata, len(items))
	copy(sorted, items)

	if key, ok := stringKeys[sortKey]; ok {
		sort.SliceStable(sorted, func(i, j int) bool {
			return key(sorted[i]) < key(sorted[j])
		})
		return sorted, nil
	}
	if key, ok := numericKeys[sortKey]; ok {
		sort.SliceStable(sorted, func(i, j int) bool {
			return key(sorted[i]) < key(sorted[j])
		})
		return sorted, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownSortKey, sortKey, strings.Join(SortKeys(), ", "))
}
