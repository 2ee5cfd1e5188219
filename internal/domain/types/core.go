package types

// UserID identifies a registered account on the backend.
type UserID string

// String returns the string form of the user id.
func (id UserID) String() string { return string(id) }

// Category is the kind of help a request or offer is about.
type Category string

// Known categories, matching the backend classifier.
const (
	CategoryMedical   Category = "medical"
	CategoryFood      Category = "food"
	CategoryShelter   Category = "shelter"
	CategoryTransport Category = "transport"
	CategorySafety    Category = "safety"
	CategoryEducation Category = "education"
	CategoryElderCare Category = "elder_care"
	CategoryChildCare Category = "child_care"
	CategoryPetCare   Category = "pet_care"
	CategoryOther     Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryMedical,
	CategoryFood,
	CategoryShelter,
	CategoryTransport,
	CategorySafety,
	CategoryEducation,
	CategoryElderCare,
	CategoryChildCare,
	CategoryPetCare,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// String returns the string form of the category.
func (c Category) String() string { return string(c) }

// Priority is the backend-assigned urgency bucket of a request.
type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

// Priorities lists priorities from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency}

// Rank orders priorities; unknown values rank below low.
func (p Priority) Rank() int {
	for i, k := range Priorities {
		if k == p {
			return i
		}
	}
	return -1
}

// Urgent reports whether the priority is high or emergency.
func (p Priority) Urgent() bool { return p == PriorityHigh || p == PriorityEmergency }

// Location is a point with a human-readable address.
// FuzzyRadius is how far (in meters) the backend blurs the point for others.
type Location struct {
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Address     string  `json:"address" validate:"required,notblank"`
	FuzzyRadius *int    `json:"fuzzy_radius,omitempty"`
}
