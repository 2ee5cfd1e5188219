package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	fcolor "github.com/fatih/color"

	"aidconnect/internal/domain"
	"aidconnect/internal/geo"
	"aidconnect/internal/services/dashboard"
	"aidconnect/internal/services/listing"
)

// PriorityBadge renders a priority as a colored tag.
func PriorityBadge(p domain.Priority) string {
	var c *fcolor.Color
	switch p {
	case domain.PriorityEmergency:
		c = fcolor.New(fcolor.FgWhite, fcolor.BgRed, fcolor.Bold)
	case domain.PriorityHigh:
		c = fcolor.New(fcolor.FgRed, fcolor.Bold)
	case domain.PriorityMedium:
		c = fcolor.New(fcolor.FgYellow)
	default:
		c = fcolor.New(fcolor.FgBlue)
	}
	return c.Sprintf("[%s]", strings.ToUpper(string(p)))
}

func label(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func distanceText(d *float64) string {
	if d == nil {
		return ""
	}
	return " · " + geo.Format(*d) + " away"
}

// RequestCard writes one request card.
func RequestCard(w io.Writer, c listing.RequestCard) {
	r := c.Request
	bold := fcolor.New(fcolor.Bold)
	fmt.Fprintf(w, "%s %s\n", PriorityBadge(r.Priority), bold.Sprint(r.Title))
	fmt.Fprintf(w, "  %s · urgency %.1f · %s%s\n", label(string(r.Category)), r.UrgencyScore, r.Status, distanceText(c.Distance))
	if r.Description != "" {
		fmt.Fprintf(w, "  %s\n", truncate(r.Description, 100))
	}
	extra := []string{"id " + r.RequestID}
	if c.Matches > 0 {
		extra = append(extra, fmt.Sprintf("%d suggested helper(s)", c.Matches))
	}
	if r.EstimatedResponseTime != nil {
		extra = append(extra, "response "+*r.EstimatedResponseTime)
	}
	fmt.Fprintf(w, "  %s\n", fcolor.New(fcolor.Faint).Sprint(strings.Join(extra, " · ")))
}

// RequestDetail writes a request with its location and match suggestions.
func RequestDetail(w io.Writer, c listing.RequestCard) {
	RequestCard(w, c)
	r := c.Request
	fmt.Fprintf(w, "  where: %s\n", r.Location.Address)
	if r.Timeframe != "" {
		fmt.Fprintf(w, "  when: %s\n", label(string(r.Timeframe)))
	}
	fmt.Fprintf(w, "  posted: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"))
	if r.ExpiresAt != nil {
		fmt.Fprintf(w, "  expires: %s\n", r.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	for _, m := range r.Matching.AIMatches {
		fmt.Fprintf(w, "  ↳ %s · %s · match %.0f%% · rating %.1f\n",
			m.Title, geo.Format(m.Distance), m.MatchScore*100, m.HelperRating)
	}
}

// OfferCard writes one offer card.
func OfferCard(w io.Writer, c listing.OfferCard) {
	o := c.Offer
	bold := fcolor.New(fcolor.Bold)
	fmt.Fprintf(w, "%s %s\n", fcolor.New(fcolor.FgGreen).Sprintf("[%s]", strings.ToUpper(string(o.Status))), bold.Sprint(o.Title))
	fmt.Fprintf(w, "  %s · capacity %d/%d · within %s%s\n",
		label(string(o.Category)), o.CurrentMatches, o.Capacity, geo.Format(float64(o.MaxDistance)), distanceText(c.Distance))
	if len(o.Skills) > 0 {
		fmt.Fprintf(w, "  skills: %s\n", strings.Join(o.Skills, ", "))
	}
	fmt.Fprintf(w, "  %s\n", fcolor.New(fcolor.Faint).Sprintf("id %s · %s", o.OfferID, availability(o.Availability)))
}

func availability(a domain.OfferAvailability) string {
	s := a.StartTime.Local().Format("Jan 2 15:04") + " - " + a.EndTime.Local().Format("Jan 2 15:04")
	if a.Recurring && len(a.DaysOfWeek) > 0 {
		names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		var days []string
		for _, d := range a.DaysOfWeek {
			if d >= 0 && d < len(names) {
				days = append(days, names[d])
			}
		}
		s += " every " + strings.Join(days, ",")
	}
	return s
}

// Dashboard writes the overview for a summary.
func Dashboard(w io.Writer, s dashboard.Summary) {
	Titlef(w, "Welcome back, %s", s.User.Profile.Name)
	fmt.Fprintf(w, "  rating %.1f (%d) · %d requests made · %d offers made · helped %d times\n",
		s.User.Stats.CommunityRating, s.User.Stats.TotalRatings,
		s.User.Stats.RequestsMade, s.User.Stats.OffersMade, s.User.Stats.HelpProvided)
	fmt.Fprintln(w)

	Titlef(w, "Community")
	fmt.Fprintf(w, "  %d active requests (%d urgent) · %d active offers\n", s.ActiveRequests, s.UrgentRequests, s.ActiveOffers)
	fmt.Fprintf(w, "  yours: %d requests · %d offers\n", s.MyRequests, s.MyOffers)
	if len(s.ByPriority) > 0 {
		var parts []string
		for i := len(domain.Priorities) - 1; i >= 0; i-- {
			p := domain.Priorities[i]
			if n := s.ByPriority[p]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", p, n))
			}
		}
		fmt.Fprintf(w, "  by priority: %s\n", strings.Join(parts, " · "))
	}
	if len(s.ByCategory) > 0 {
		fmt.Fprintf(w, "  by category: %s\n", categoryCounts(s.ByCategory))
	}
	fmt.Fprintln(w)

	Titlef(w, "Recent requests")
	if len(s.RecentRequests) == 0 {
		Hintf(w, "none yet")
	}
	for _, r := range s.RecentRequests {
		fmt.Fprintf(w, "  %s %s · %s\n", PriorityBadge(r.Priority), r.Title, label(string(r.Category)))
	}
	fmt.Fprintln(w)

	Titlef(w, "Recent offers")
	if len(s.RecentOffers) == 0 {
		Hintf(w, "none yet")
	}
	for _, o := range s.RecentOffers {
		fmt.Fprintf(w, "  %s · %s\n", o.Title, label(string(o.Category)))
	}
}

// categoryCounts lists counts busiest first, ties in category order.
func categoryCounts(m map[domain.Category]int) string {
	cats := make([]domain.Category, 0, len(m))
	for _, c := range domain.Categories {
		if m[c] > 0 {
			cats = append(cats, c)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool { return m[cats[i]] > m[cats[j]] })
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%s %d", label(string(c)), m[c])
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
