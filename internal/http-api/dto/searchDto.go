package dto

import (
	"fmt"
	"strings"

	"levelhub/internal/http-api/models"
)

// Feed sort keys. Anything other than "time" falls back to rating order,
// matching the original product behavior.
const (
	SortByTime   = "time"
	SortByRating = "rating"
)

// SearchFilters is the validated filter set for the home feed. Absent
// filters impose no constraint; the rating range always applies and defaults
// to the full legal range. RatingHigh is a pointer so an explicit 0 (only
// unrated levels) stays distinguishable from "not supplied".
type SearchFilters struct {
	RatingLow    float64  `json:"rating_low"`
	RatingHigh   *float64 `json:"rating_high,omitempty"`
	Difficulties []string `json:"difficulties,omitempty"`
	TimespanDays *int     `json:"timespan_days,omitempty"`
	Search       string   `json:"search,omitempty"`
	SortBy       string   `json:"sort_by,omitempty"`
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
}

// DefaultSearchFilters returns the filter set used when the caller supplies
// nothing: full rating range, no difficulty/recency/search restriction,
// rating order, first page.
func DefaultSearchFilters() SearchFilters {
	high := float64(models.RatingMax)
	return SearchFilters{
		RatingLow:  0,
		RatingHigh: &high,
		SortBy:     SortByRating,
		Page:       1,
		PageSize:   20,
	}
}

// Normalize fills zero-valued pagination and sort fields with their
// defaults and trims string inputs. Call before Validate.
func (f *SearchFilters) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	f.SortBy = strings.ToLower(strings.TrimSpace(f.SortBy))
	if f.SortBy == "" {
		f.SortBy = SortByRating
	}
	if f.RatingHigh == nil {
		// absent upper bound means "unspecified": widen to the maximum. An
		// explicit 0 is kept as-is so Validate sees what the caller sent.
		high := float64(models.RatingMax)
		f.RatingHigh = &high
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}

	trimmed := make([]string, 0, len(f.Difficulties))
	for _, d := range f.Difficulties {
		if d := strings.ToLower(strings.TrimSpace(d)); d != "" {
			trimmed = append(trimmed, d)
		}
	}
	f.Difficulties = trimmed
}

// Validate rejects filter combinations that must never reach the database:
// inverted or out-of-range rating bounds, difficulties outside the enum,
// non-positive recency windows, unknown sort keys.
func (f SearchFilters) Validate() error {
	if f.RatingHigh != nil && f.RatingLow > *f.RatingHigh {
		return fmt.Errorf("rating range is inverted: low %.1f > high %.1f", f.RatingLow, *f.RatingHigh)
	}
	if f.RatingLow < 0 || (f.RatingHigh != nil && *f.RatingHigh > models.RatingMax) {
		return fmt.Errorf("rating bounds must lie within [0, %d]", models.RatingMax)
	}
	for _, d := range f.Difficulties {
		if !models.ValidDifficulty(d) {
			return fmt.Errorf("unknown difficulty %q", d)
		}
	}
	if f.TimespanDays != nil && *f.TimespanDays < 1 {
		return fmt.Errorf("timespan_days must be positive, got %d", *f.TimespanDays)
	}
	if f.SortBy != SortByTime && f.SortBy != SortByRating {
		return fmt.Errorf("sort_by must be %q or %q", SortByTime, SortByRating)
	}
	return nil
}
