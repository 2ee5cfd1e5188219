package listing

import (
	"fmt"
	"slices"
	"strings"

	"aidconnect/internal/domain"
	"aidconnect/internal/geo"
)

// Sort selects the order of request cards.
type Sort string

const (
	// SortUrgency orders by urgency score, highest first. This is the
	// backend's own order.
	SortUrgency Sort = "urgency"
	// SortNewest orders by creation time, newest first.
	SortNewest Sort = "newest"
	// SortDistance orders by distance from the viewer, nearest first.
	SortDistance Sort = "distance"
)

// Sorts lists the accepted sort keys.
var Sorts = []Sort{SortUrgency, SortNewest, SortDistance}

// Filter is the current filter state of the request listing.
type Filter struct {
	Category domain.Category
	Status   domain.RequestStatus
	Priority domain.Priority
	Search   string
	// Near restricts the backend query to Radius meters around a point.
	Near   *domain.Location
	Radius int
	Limit  int
	Sort   Sort
}

// OfferFilter is the current filter state of the offer listing.
type OfferFilter struct {
	Category domain.Category
	Search   string
	Limit    int
}

// Validate rejects values the backend or the sorter would not understand.
func (f Filter) Validate() error {
	if f.Category != "" && !f.Category.Valid() {
		return fmt.Errorf("unknown category %q", f.Category)
	}
	switch f.Status {
	case "", domain.RequestOpen, domain.RequestMatched, domain.RequestFulfilled,
		domain.RequestExpired, domain.RequestCancelled:
	default:
		return fmt.Errorf("unknown status %q", f.Status)
	}
	if f.Priority != "" && f.Priority.Rank() < 0 {
		return fmt.Errorf("unknown priority %q", f.Priority)
	}
	if f.Sort != "" && !slices.Contains(Sorts, f.Sort) {
		return fmt.Errorf("unknown sort %q", f.Sort)
	}
	if f.Radius < 0 {
		return fmt.Errorf("radius must not be negative")
	}
	if f.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

// local reports whether the records the user sees depend on client-side
// filtering or ordering. The backend only ranks by urgency and selects by a
// bounding box, so anything else needs the wider page.
func (f Filter) local() bool {
	return f.Priority != "" ||
		strings.TrimSpace(f.Search) != "" ||
		f.circle() ||
		(f.Sort != "" && f.Sort != SortUrgency)
}

// circle reports whether results are trimmed to a true radius around Near.
func (f Filter) circle() bool {
	return f.Near != nil && f.Radius > 0
}

func (f Filter) query(fetchLimit int) domain.RequestFilter {
	q := domain.RequestFilter{
		Category: f.Category,
		Status:   f.Status,
		Radius:   f.Radius,
		Limit:    f.Limit,
	}
	if f.Near != nil {
		lat, lng := f.Near.Latitude, f.Near.Longitude
		q.Latitude, q.Longitude = &lat, &lng
	}
	if f.local() {
		q.Limit = fetchLimit
	}
	return q
}

func (f Filter) matches(r domain.HelpRequest) bool {
	if f.Priority != "" && r.Priority != f.Priority {
		return false
	}
	if f.circle() && !geo.IsWithinRadius(*f.Near, r.Location, float64(f.Radius)) {
		return false
	}
	return containsFold(f.Search, r.Title, r.Description)
}

func (f OfferFilter) matches(o domain.HelpOffer) bool {
	return containsFold(f.Search, append([]string{o.Title, o.Description}, o.Skills...)...)
}

// containsFold reports whether needle occurs in any of hay, ignoring case.
// A blank needle matches everything.
func containsFold(needle string, hay ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, h := range hay {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
