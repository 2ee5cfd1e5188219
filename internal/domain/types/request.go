package types

import "time"

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestMatched   RequestStatus = "matched"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestExpired   RequestStatus = "expired"
	RequestCancelled RequestStatus = "cancelled"
)

// Active reports whether the request still wants responders.
func (s RequestStatus) Active() bool { return s == RequestOpen || s == RequestMatched }

// Timeframe is how soon the requester needs help.
type Timeframe string

const (
	TimeframeASAP     Timeframe = "asap"
	TimeframeToday    Timeframe = "today"
	TimeframeThisWeek Timeframe = "this_week"
	TimeframeFlexible Timeframe = "flexible"
)

// Timeframes lists the selectable timeframes.
var Timeframes = []Timeframe{TimeframeASAP, TimeframeToday, TimeframeThisWeek, TimeframeFlexible}

// RequestMedia references attachments uploaded elsewhere.
type RequestMedia struct {
	Images       []string `json:"images"`
	VoiceNoteURL *string  `json:"voice_note_url,omitempty"`
}

// AIMatch is one candidate offer the backend suggested for a request.
type AIMatch struct {
	OfferID      string  `json:"offer_id"`
	UserID       UserID  `json:"user_id"`
	Title        string  `json:"title"`
	Distance     float64 `json:"distance"`
	MatchScore   float64 `json:"match_score"`
	HelperRating float64 `json:"helper_rating"`
}

// RequestMatching holds responders and backend match suggestions.
type RequestMatching struct {
	Respondents []string  `json:"respondents"`
	MatchedWith *string   `json:"matched_with,omitempty"`
	AIMatches   []AIMatch `json:"ai_matches"`
}

// HelpRequest is a help-needed post.
type HelpRequest struct {
	RequestID             string          `json:"request_id"`
	UserID                UserID          `json:"user_id"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	Category              Category        `json:"category"`
	UrgencyScore          float64         `json:"urgency_score"`
	Priority              Priority        `json:"priority"`
	Status                RequestStatus   `json:"status"`
	Location              Location        `json:"location"`
	Media                 RequestMedia    `json:"media"`
	Matching              RequestMatching `json:"matching"`
	Timeframe             Timeframe       `json:"timeframe,omitempty"`
	EstimatedResponseTime *string         `json:"estimated_response_time,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	ExpiresAt             *time.Time      `json:"expires_at,omitempty"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// HelpRequestCreate is the payload the request wizard submits.
// Category is optional; the backend classifies when it is empty.
type HelpRequestCreate struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,notblank"`
	Category    Category  `json:"category,omitempty"`
	Timeframe   Timeframe `json:"timeframe,omitempty"`
	Location    Location  `json:"location"`
}

// RequestFilter is the server-side query for /api/requests.
// Zero values are omitted from the query string.
type RequestFilter struct {
	Category  Category
	Status    RequestStatus
	Latitude  *float64
	Longitude *float64
	Radius    int
	Limit     int
}
