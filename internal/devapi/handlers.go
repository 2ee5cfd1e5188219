package devapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"aidconnect/internal/domain"
)

const (
	defaultFuzzyRadius  = 100
	defaultMaxDistance  = 5000
	defaultListLimit    = 20
	defaultSearchRadius = 5000
	requestLifetime     = 7 * 24 * time.Hour
)

// Fallback classification the backend applies when its classifier is unavailable.
const (
	fallbackUrgency      = 3.0
	fallbackPriority     = domain.PriorityMedium
	fallbackResponseTime = "within 4 hours"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Aid-Connect API - Empowering Communities"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Health{
		Status:    "healthy",
		Timestamp: s.now(),
		Services:  map[string]string{"database": "in-memory", "ai": "unavailable"},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in domain.UserCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if missing := missingFields(map[string]string{
		"email":        in.Email,
		"password":     in.Password,
		"profile.name": in.Profile.Name,
	}); len(missing) > 0 {
		writeMissing(w, missing...)
		return
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	now := s.now()
	profile := in.Profile
	if profile.Location.FuzzyRadius == nil {
		fr := defaultFuzzyRadius
		profile.Location.FuzzyRadius = &fr
	}
	a := &account{
		User: domain.User{
			UserID:  domain.UserID(uuid.NewString()),
			Email:   in.Email,
			Phone:   in.Phone,
			Profile: profile,
			Preferences: domain.UserPreferences{
				MaxDistance:          defaultMaxDistance,
				Categories:           []string{},
				NotificationsEnabled: true,
			},
			Verification: domain.UserVerification{TrustScore: 1.0},
			Stats:        domain.UserStats{CommunityRating: 5.0},
			CreatedAt:    now,
			LastActive:   now,
			IsActive:     true,
		},
		HashedPassword: hash,
	}
	if !s.mem.addUser(a) {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	s.writeToken(w, a.UserID)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in domain.UserLogin
	if !decodeBody(w, r, &in) {
		return
	}
	a, ok := s.mem.userByEmail(in.Email)
	if !ok || !checkPassword(a.HashedPassword, in.Password) {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	s.mem.touch(a.UserID, func(u *domain.User) { u.LastActive = s.now() })
	s.writeToken(w, a.UserID)
}

func (s *Server) writeToken(w http.ResponseWriter, id domain.UserID) {
	tok, err := s.issueToken(id)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, domain.Token{AccessToken: tok, TokenType: "bearer", UserID: id})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFrom(r.Context()).User)
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var in domain.HelpRequestCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if missing := missingFields(map[string]string{
		"title":            in.Title,
		"description":      in.Description,
		"location.address": in.Location.Address,
	}); len(missing) > 0 {
		writeMissing(w, missing...)
		return
	}

	category := in.Category
	if category == "" {
		category = domain.CategoryOther
	}
	now := s.now()
	expires := now.Add(requestLifetime)
	eta := fallbackResponseTime
	req := domain.HelpRequest{
		RequestID:             uuid.NewString(),
		UserID:                userFrom(r.Context()).UserID,
		Title:                 in.Title,
		Description:           in.Description,
		Category:              category,
		UrgencyScore:          fallbackUrgency,
		Priority:              fallbackPriority,
		Status:                domain.RequestOpen,
		Location:              in.Location,
		Media:                 domain.RequestMedia{Images: []string{}},
		Matching:              domain.RequestMatching{Respondents: []string{}, AIMatches: []domain.AIMatch{}},
		Timeframe:             in.Timeframe,
		EstimatedResponseTime: &eta,
		CreatedAt:             now,
		ExpiresAt:             &expires,
		UpdatedAt:             now,
	}
	s.mem.addRequest(req)
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rq := requestQuery{
		category: domain.Category(q.Get("category")),
		status:   domain.RequestStatus(q.Get("status")),
		radius:   defaultSearchRadius,
		limit:    defaultListLimit,
	}
	var ok bool
	if rq.lat, ok = floatParam(w, q.Get("latitude"), "latitude"); !ok {
		return
	}
	if rq.lng, ok = floatParam(w, q.Get("longitude"), "longitude"); !ok {
		return
	}
	if v := q.Get("radius"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "radius must be an integer")
			return
		}
		rq.radius = float64(n)
	}
	if rq.limit, ok = intParam(w, q.Get("limit"), "limit", defaultListLimit); !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.mem.listRequests(rq))
}

func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := s.mem.request(mux.Vars(r)["id"])
	if !ok {
		writeDetail(w, http.StatusNotFound, "Request not found")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var in domain.HelpOfferCreate
	if !decodeBody(w, r, &in) {
		return
	}
	if missing := missingFields(map[string]string{
		"title":            in.Title,
		"description":      in.Description,
		"category":         string(in.Category),
		"location.address": in.Location.Address,
	}); len(missing) > 0 {
		writeMissing(w, missing...)
		return
	}
	if in.Capacity <= 0 {
		in.Capacity = 1
	}
	if in.MaxDistance <= 0 {
		in.MaxDistance = defaultMaxDistance
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	if in.Availability.DaysOfWeek == nil {
		in.Availability.DaysOfWeek = []int{}
	}
	o := domain.HelpOffer{
		OfferID:      uuid.NewString(),
		UserID:       userFrom(r.Context()).UserID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Skills:       in.Skills,
		Availability: in.Availability,
		Location:     in.Location,
		MaxDistance:  in.MaxDistance,
		Capacity:     in.Capacity,
		Status:       domain.OfferActive,
		CreatedAt:    s.now(),
	}
	s.mem.addOffer(o)
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := intParam(w, q.Get("limit"), "limit", defaultListLimit)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.mem.listOffers(domain.Category(q.Get("category")), limit))
}

// missingFields returns the names of blank values in a fixed order.
func missingFields(fields map[string]string) []string {
	var out []string
	for _, name := range []string{"email", "password", "profile.name", "title", "description", "category", "location.address"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	return out
}

func floatParam(w http.ResponseWriter, v, name string) (*float64, bool) {
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, name+" must be a number")
		return nil, false
	}
	return &f, true
}

func intParam(w http.ResponseWriter, v, name string, def int) (int, bool) {
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false
	}
	return n, true
}
