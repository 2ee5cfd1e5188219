package types

import "time"

// OfferStatus is the lifecycle state of a help offer.
type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferPaused   OfferStatus = "paused"
	OfferFull     OfferStatus = "full"
	OfferInactive OfferStatus = "inactive"
)

// OfferAvailability is when the helper can be reached.
// DaysOfWeek uses 0=Monday .. 6=Sunday.
type OfferAvailability struct {
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time" validate:"gtfield=StartTime"`
	Recurring  bool      `json:"recurring"`
	DaysOfWeek []int     `json:"days_of_week" validate:"dive,gte=0,lte=6"`
}

// HelpOffer is a help-available post.
type HelpOffer struct {
	OfferID        string            `json:"offer_id"`
	UserID         UserID            `json:"user_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       Category          `json:"category"`
	Skills         []string          `json:"skills"`
	Availability   OfferAvailability `json:"availability"`
	Location       Location          `json:"location"`
	MaxDistance    int               `json:"max_distance"`
	Capacity       int               `json:"capacity"`
	CurrentMatches int               `json:"current_matches"`
	Status         OfferStatus       `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// HelpOfferCreate is the payload the offer wizard submits.
type HelpOfferCreate struct {
	Title        string            `json:"title" validate:"required,notblank"`
	Description  string            `json:"description" validate:"required,notblank"`
	Category     Category          `json:"category" validate:"required"`
	Skills       []string          `json:"skills"`
	Availability OfferAvailability `json:"availability"`
	Location     Location          `json:"location"`
	MaxDistance  int               `json:"max_distance" validate:"gte=0"`
	Capacity     int               `json:"capacity" validate:"gte=1"`
}

// OfferFilter is the server-side query for /api/offers.
type OfferFilter struct {
	Category  Category
	Latitude  *float64
	Longitude *float64
	Radius    int
	Limit     int
}
