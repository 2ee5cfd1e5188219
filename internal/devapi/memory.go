package devapi

import (
	"sort"
	"strings"
	"sync"

	"aidconnect/internal/domain"
)

// account is a stored user plus its password hash.
type account struct {
	domain.User
	HashedPassword string
}

type memoryStore struct {
	mu       sync.RWMutex
	users    map[domain.UserID]*account
	byEmail  map[string]domain.UserID
	requests map[string]domain.HelpRequest
	offers   map[string]domain.HelpOffer
	// insertion order keeps listings stable when sort keys tie
	requestOrder []string
	offerOrder   []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[domain.UserID]*account),
		byEmail:  make(map[string]domain.UserID),
		requests: make(map[string]domain.HelpRequest),
		offers:   make(map[string]domain.HelpOffer),
	}
}

func emailKey(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// addUser stores a; it reports false when the email is taken.
func (m *memoryStore) addUser(a *account) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := emailKey(a.Email)
	if _, taken := m.byEmail[k]; taken {
		return false
	}
	m.users[a.UserID] = a
	m.byEmail[k] = a.UserID
	return true
}

// userByID returns a copy of the stored account.
func (m *memoryStore) userByID(id domain.UserID) (account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.users[id]
	if !ok {
		return account{}, false
	}
	return *a, true
}

func (m *memoryStore) userByEmail(email string) (account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[emailKey(email)]
	if !ok {
		return account{}, false
	}
	return *m.users[id], true
}

func (m *memoryStore) touch(id domain.UserID, f func(u *domain.User)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.users[id]; ok {
		f(&a.User)
	}
}

func (m *memoryStore) addRequest(r domain.HelpRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.RequestID] = r
	m.requestOrder = append(m.requestOrder, r.RequestID)
}

func (m *memoryStore) request(id string) (domain.HelpRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.requests[id]
	return r, ok
}

// requestQuery mirrors the backend's list filter.
type requestQuery struct {
	category domain.Category
	status   domain.RequestStatus
	lat, lng *float64
	radius   float64
	limit    int
}

// metersPerDegree is the rough conversion the backend uses for its bounding box.
const metersPerDegree = 111000.0

func (q requestQuery) match(r domain.HelpRequest) bool {
	if q.category != "" && r.Category != q.category {
		return false
	}
	if q.status != "" {
		if r.Status != q.status {
			return false
		}
	} else if !r.Status.Active() {
		return false
	}
	if q.lat != nil && q.lng != nil {
		d := q.radius / metersPerDegree
		if r.Location.Latitude < *q.lat-d || r.Location.Latitude > *q.lat+d {
			return false
		}
		if r.Location.Longitude < *q.lng-d || r.Location.Longitude > *q.lng+d {
			return false
		}
	}
	return true
}

func (m *memoryStore) listRequests(q requestQuery) []domain.HelpRequest {
	m.mu.RLock()
	out := make([]domain.HelpRequest, 0, len(m.requestOrder))
	for _, id := range m.requestOrder {
		if r := m.requests[id]; q.match(r) {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].UrgencyScore > out[j].UrgencyScore })
	if q.limit > 0 && len(out) > q.limit {
		out = out[:q.limit]
	}
	return out
}

func (m *memoryStore) addOffer(o domain.HelpOffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers[o.OfferID] = o
	m.offerOrder = append(m.offerOrder, o.OfferID)
}

func (m *memoryStore) listOffers(category domain.Category, limit int) []domain.HelpOffer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.HelpOffer, 0, len(m.offerOrder))
	for _, id := range m.offerOrder {
		o := m.offers[id]
		if o.Status != domain.OfferActive {
			continue
		}
		if category != "" && o.Category != category {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
