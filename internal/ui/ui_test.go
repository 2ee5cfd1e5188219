package ui_test

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"aidconnect/internal/domain"
	"aidconnect/internal/services/dashboard"
	"aidconnect/internal/services/listing"
	"aidconnect/internal/ui"
)

func TestMain(m *testing.M) {
	fcolor.NoColor = true
	os.Exit(m.Run())
}

func TestNotify(t *testing.T) {
	var buf bytes.Buffer
	ui.Successf(&buf, "logged in as %s", "ann")
	ui.Errorf(&buf, "%v", errors.New("Invalid credentials"))
	ui.Warnf(&buf, "first line\nsecond line")
	assert.Equal(t, "✔ logged in as ann\n✗ Invalid credentials\n⚠ first line\n  second line\n", buf.String())
}

func TestNotify_PercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	format := "100% done"
	ui.Infof(&buf, format)
	assert.Equal(t, "ℹ 100% done\n", buf.String())
}

func TestRequestCard(t *testing.T) {
	eta := "within 4 hours"
	d := 1530.0
	c := listing.RequestCard{
		Request: domain.HelpRequest{
			RequestID:             "r-1",
			Title:                 "Need a ride",
			Description:           "To the clinic",
			Category:              domain.CategoryElderCare,
			UrgencyScore:          7.3,
			Priority:              domain.PriorityHigh,
			Status:                domain.RequestOpen,
			EstimatedResponseTime: &eta,
		},
		Distance: &d,
		Matches:  2,
	}
	var buf bytes.Buffer
	ui.RequestCard(&buf, c)
	out := buf.String()
	assert.Contains(t, out, "[HIGH] Need a ride")
	assert.Contains(t, out, "elder care · urgency 7.3 · open · 1.5 km away")
	assert.Contains(t, out, "2 suggested helper(s)")
	assert.Contains(t, out, "response within 4 hours")
}

func TestRequestDetail_ListsMatches(t *testing.T) {
	c := listing.RequestCard{Request: domain.HelpRequest{
		Title:     "Soup",
		Priority:  domain.PriorityLow,
		Location:  domain.Location{Address: "12 Main St"},
		Timeframe: domain.TimeframeThisWeek,
		Matching: domain.RequestMatching{AIMatches: []domain.AIMatch{
			{Title: "Home cook", Distance: 420, MatchScore: 0.87, HelperRating: 4.5},
		}},
	}}
	var buf bytes.Buffer
	ui.RequestDetail(&buf, c)
	out := buf.String()
	assert.Contains(t, out, "where: 12 Main St")
	assert.Contains(t, out, "when: this week")
	assert.Contains(t, out, "↳ Home cook · 420 m · match 87% · rating 4.5")
}

func TestOfferCard(t *testing.T) {
	start := time.Date(2026, 7, 4, 9, 0, 0, 0, time.Local)
	c := listing.OfferCard{Offer: domain.HelpOffer{
		OfferID:      "o-1",
		Title:        "Dog sitter",
		Category:     domain.CategoryPetCare,
		Skills:       []string{"dogs", "cats"},
		Status:       domain.OfferActive,
		Capacity:     2,
		MaxDistance:  3000,
		Availability: domain.OfferAvailability{StartTime: start, EndTime: start.Add(2 * time.Hour), Recurring: true, DaysOfWeek: []int{5, 6}},
	}}
	var buf bytes.Buffer
	ui.OfferCard(&buf, c)
	out := buf.String()
	assert.Contains(t, out, "[ACTIVE] Dog sitter")
	assert.Contains(t, out, "pet care · capacity 0/2 · within 3.0 km")
	assert.Contains(t, out, "skills: dogs, cats")
	assert.Contains(t, out, "Jul 4 09:00 - Jul 4 11:00 every Sat,Sun")
}

func TestDashboard(t *testing.T) {
	s := dashboard.Summary{
		User:           domain.User{Profile: domain.UserProfile{Name: "Ann"}, Stats: domain.UserStats{CommunityRating: 5}},
		ActiveRequests: 3,
		UrgentRequests: 1,
		ByCategory:     map[domain.Category]int{domain.CategoryFood: 1, domain.CategoryMedical: 2},
		ByPriority:     map[domain.Priority]int{domain.PriorityEmergency: 1, domain.PriorityLow: 2},
		RecentRequests: []domain.HelpRequest{{Title: "Soup", Priority: domain.PriorityLow, Category: domain.CategoryFood}},
	}
	var buf bytes.Buffer
	ui.Dashboard(&buf, s)
	out := buf.String()
	assert.Contains(t, out, "Welcome back, Ann")
	assert.Contains(t, out, "3 active requests (1 urgent) · 0 active offers")
	assert.Contains(t, out, "by priority: emergency 1 · low 2")
	assert.Contains(t, out, "by category: medical 2 · food 1")
	assert.Contains(t, out, "[LOW] Soup · food")
	assert.Contains(t, out, "Recent offers\n  none yet")
}
