package listing

import (
	"context"
	"fmt"
	"sort"

	"aidconnect/internal/domain"
	"aidconnect/internal/geo"
)

// fetchLimit is how many records are requested when filtering or sorting
// happens locally, so the user's limit applies afterwards.
const fetchLimit = 100

// DefaultLimit matches the backend's page size when no limit is given.
const DefaultLimit = 20

// RequestCard is one request as shown in the listing.
type RequestCard struct {
	Request domain.HelpRequest
	// Distance is meters from the viewer, nil when either side lacks a location.
	Distance *float64
	// Matches is the number of backend match suggestions.
	Matches int
}

// OfferCard is one offer as shown in the listing.
type OfferCard struct {
	Offer    domain.HelpOffer
	Distance *float64
}

// Service backs the listing views.
type Service struct {
	requests domain.RequestAPI
	offers   domain.OfferAPI
}

// New returns a listing service over the given endpoints.
func New(requests domain.RequestAPI, offers domain.OfferAPI) *Service {
	return &Service{requests: requests, offers: offers}
}

// Requests fetches requests for f and returns them as cards. viewer is the
// point distances are measured from and may be nil.
func (s *Service) Requests(ctx context.Context, f Filter, viewer *domain.Location) ([]RequestCard, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	reqs, err := s.requests.ListRequests(ctx, f.query(fetchLimit))
	if err != nil {
		return nil, err
	}
	return Apply(reqs, f, viewer), nil
}

// Request fetches a single request as a card.
func (s *Service) Request(ctx context.Context, id string, viewer *domain.Location) (RequestCard, error) {
	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return RequestCard{}, err
	}
	return newRequestCard(r, viewer), nil
}

// Offers fetches active offers for f and returns them as cards.
func (s *Service) Offers(ctx context.Context, f OfferFilter, viewer *domain.Location) ([]OfferCard, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", f.Category)
	}
	q := domain.OfferFilter{Category: f.Category, Limit: f.Limit}
	if f.Search != "" {
		q.Limit = fetchLimit
	}
	offers, err := s.offers.ListOffers(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]OfferCard, 0, len(offers))
	for _, o := range offers {
		if !f.matches(o) {
			continue
		}
		out = append(out, OfferCard{Offer: o, Distance: distance(viewer, o.Location)})
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// Apply filters, sorts and limits reqs locally.
func Apply(reqs []domain.HelpRequest, f Filter, viewer *domain.Location) []RequestCard {
	cards := make([]RequestCard, 0, len(reqs))
	for _, r := range reqs {
		if f.matches(r) {
			cards = append(cards, newRequestCard(r, viewer))
		}
	}
	sortCards(cards, f.Sort)
	if f.Limit > 0 && len(cards) > f.Limit {
		cards = cards[:f.Limit]
	}
	return cards
}

func newRequestCard(r domain.HelpRequest, viewer *domain.Location) RequestCard {
	return RequestCard{
		Request:  r,
		Distance: distance(viewer, r.Location),
		Matches:  len(r.Matching.AIMatches),
	}
}

func sortCards(cards []RequestCard, by Sort) {
	var less func(a, b RequestCard) bool
	switch by {
	case SortNewest:
		less = func(a, b RequestCard) bool { return a.Request.CreatedAt.After(b.Request.CreatedAt) }
	case SortDistance:
		less = func(a, b RequestCard) bool {
			switch {
			case a.Distance == nil:
				return false
			case b.Distance == nil:
				return true
			default:
				return *a.Distance < *b.Distance
			}
		}
	default:
		less = func(a, b RequestCard) bool {
			if a.Request.UrgencyScore != b.Request.UrgencyScore {
				return a.Request.UrgencyScore > b.Request.UrgencyScore
			}
			return a.Request.Priority.Rank() > b.Request.Priority.Rank()
		}
	}
	sort.SliceStable(cards, func(i, j int) bool { return less(cards[i], cards[j]) })
}

// distance returns nil when the viewer is unknown or the record has no address.
func distance(viewer *domain.Location, at domain.Location) *float64 {
	if viewer == nil || at.Address == "" {
		return nil
	}
	d := geo.Between(*viewer, at)
	return &d
}
