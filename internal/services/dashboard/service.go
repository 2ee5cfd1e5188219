package dashboard

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"aidconnect/internal/domain"
)

const (
	// RecentCount is how many recent requests and offers a summary keeps.
	RecentCount = 5
	// fetchLimit bounds each list call; counts cover at most this many records.
	fetchLimit = 100
)

// Summary is everything the dashboard shows.
type Summary struct {
	User domain.User

	ActiveRequests int
	UrgentRequests int
	ByCategory     map[domain.Category]int
	ByPriority     map[domain.Priority]int
	MyRequests     int

	ActiveOffers int
	MyOffers     int

	RecentRequests []domain.HelpRequest
	RecentOffers   []domain.HelpOffer
}

// Service assembles dashboard summaries.
type Service struct {
	api domain.APIClient
}

// New returns a dashboard service over api.
func New(api domain.APIClient) *Service { return &Service{api: api} }

// Load fetches the profile, requests and offers concurrently and summarizes
// them. The first failing fetch cancels the others and its error is returned.
func (s *Service) Load(ctx context.Context) (Summary, error) {
	var (
		user     domain.User
		requests []domain.HelpRequest
		offers   []domain.HelpOffer
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.api.Me(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.api.ListRequests(ctx, domain.RequestFilter{Limit: fetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		offers, err = s.api.ListOffers(ctx, domain.OfferFilter{Limit: fetchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(user, requests, offers), nil
}

// Summarize computes the dashboard aggregates from already fetched records.
func Summarize(user domain.User, requests []domain.HelpRequest, offers []domain.HelpOffer) Summary {
	sum := Summary{
		User:       user,
		ByCategory: make(map[domain.Category]int),
		ByPriority: make(map[domain.Priority]int),
	}
	for _, r := range requests {
		if r.UserID == user.UserID {
			sum.MyRequests++
		}
		if !r.Status.Active() {
			continue
		}
		sum.ActiveRequests++
		sum.ByCategory[r.Category]++
		sum.ByPriority[r.Priority]++
		if r.Priority.Urgent() {
			sum.UrgentRequests++
		}
	}
	for _, o := range offers {
		if o.UserID == user.UserID {
			sum.MyOffers++
		}
		if o.Status == domain.OfferActive {
			sum.ActiveOffers++
		}
	}

	sum.RecentRequests = append([]domain.HelpRequest(nil), requests...)
	sort.SliceStable(sum.RecentRequests, func(i, j int) bool {
		return sum.RecentRequests[i].CreatedAt.After(sum.RecentRequests[j].CreatedAt)
	})
	if len(sum.RecentRequests) > RecentCount {
		sum.RecentRequests = sum.RecentRequests[:RecentCount]
	}

	sum.RecentOffers = append([]domain.HelpOffer(nil), offers...)
	sort.SliceStable(sum.RecentOffers, func(i, j int) bool {
		return sum.RecentOffers[i].CreatedAt.After(sum.RecentOffers[j].CreatedAt)
	})
	if len(sum.RecentOffers) > RecentCount {
		sum.RecentOffers = sum.RecentOffers[:RecentCount]
	}
	return sum
}
