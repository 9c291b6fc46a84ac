// Package filter implements the storefront list filtering and sorting
// engine. All functions are pure: they never mutate their input slice and
// are total over empty or malformed input.
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Sort option labels, as presented to the user
const (
	SortMostRecent   = "Most Recent"
	SortPopularity   = "Popularity"
	SortPriceLowHigh = "Price: Low to High"
	SortPriceHighLow = "Price: High to Low"
	SortAlphabetical = "Alphabetical"
)

// TypeAll matches every supplier type
const TypeAll = "All"

// State holds the user-chosen constraints applied to a list before display.
// The zero value applies no constraints.
type State struct {
	SearchQuery  string
	MinPrice     string
	MaxPrice     string
	CategoryID   *uint
	SupplierType string
	SortBy       string
}

// StateFromQuery builds a State from HTTP query parameters
func StateFromQuery(q url.Values) State {
	s := State{
		SearchQuery:  strings.TrimSpace(q.Get("search")),
		MinPrice:     q.Get("min_price"),
		MaxPrice:     q.Get("max_price"),
		SupplierType: q.Get("type"),
		SortBy:       q.Get("sort"),
	}

	if raw := q.Get("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			s.CategoryID = &categoryID
		}
	}

	return s
}

// parseBound parses a price bound. Empty or unparsable bounds are treated
// as "no constraint" rather than excluding everything.
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// containsFold reports whether substr occurs in s, case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
