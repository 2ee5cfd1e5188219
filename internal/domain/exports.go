package domain

import (
	interfaces "aidconnect/internal/domain/interfaces"
	types "aidconnect/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID            = types.UserID
	Category          = types.Category
	Priority          = types.Priority
	Location          = types.Location
	UserProfile       = types.UserProfile
	UserPreferences   = types.UserPreferences
	UserStats         = types.UserStats
	UserVerification  = types.UserVerification
	User              = types.User
	UserCreate        = types.UserCreate
	UserLogin         = types.UserLogin
	Token             = types.Token
	RequestStatus     = types.RequestStatus
	Timeframe         = types.Timeframe
	RequestMedia      = types.RequestMedia
	AIMatch           = types.AIMatch
	RequestMatching   = types.RequestMatching
	HelpRequest       = types.HelpRequest
	HelpRequestCreate = types.HelpRequestCreate
	RequestFilter     = types.RequestFilter
	OfferStatus       = types.OfferStatus
	OfferAvailability = types.OfferAvailability
	HelpOffer         = types.HelpOffer
	HelpOfferCreate   = types.HelpOfferCreate
	OfferFilter       = types.OfferFilter
	Health            = types.Health
	SessionRecord     = types.SessionRecord
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthAPI        = interfaces.AuthAPI
	RequestAPI     = interfaces.RequestAPI
	OfferAPI       = interfaces.OfferAPI
	APIClient      = interfaces.APIClient
	SessionStore   = interfaces.SessionStore
	TokenSource    = interfaces.TokenSource
	SessionService = interfaces.SessionService
)

// Enumerations re-exported for callers that only import domain.
const (
	CategoryMedical   = types.CategoryMedical
	CategoryFood      = types.CategoryFood
	CategoryShelter   = types.CategoryShelter
	CategoryTransport = types.CategoryTransport
	CategorySafety    = types.CategorySafety
	CategoryEducation = types.CategoryEducation
	CategoryElderCare = types.CategoryElderCare
	CategoryChildCare = types.CategoryChildCare
	CategoryPetCare   = types.CategoryPetCare
	CategoryOther     = types.CategoryOther

	PriorityLow       = types.PriorityLow
	PriorityMedium    = types.PriorityMedium
	PriorityHigh      = types.PriorityHigh
	PriorityEmergency = types.PriorityEmergency

	RequestOpen      = types.RequestOpen
	RequestMatched   = types.RequestMatched
	RequestFulfilled = types.RequestFulfilled
	RequestExpired   = types.RequestExpired
	RequestCancelled = types.RequestCancelled

	TimeframeASAP     = types.TimeframeASAP
	TimeframeToday    = types.TimeframeToday
	TimeframeThisWeek = types.TimeframeThisWeek
	TimeframeFlexible = types.TimeframeFlexible

	OfferActive   = types.OfferActive
	OfferPaused   = types.OfferPaused
	OfferFull     = types.OfferFull
	OfferInactive = types.OfferInactive
)

// Categories, Priorities and Timeframes list the selectable values.
var (
	Categories = types.Categories
	Priorities = types.Priorities
	Timeframes = types.Timeframes
)
