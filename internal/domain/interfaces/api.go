package interfaces

import (
	"context"

	domaintypes "aidconnect/internal/domain/types"
)

// AuthAPI covers the account endpoints of the backend.
type AuthAPI interface {
	Login(ctx context.Context, in domaintypes.UserLogin) (domaintypes.Token, error)
	Register(ctx context.Context, in domaintypes.UserCreate) (domaintypes.Token, error)
	Me(ctx context.Context) (domaintypes.User, error)
}

// RequestAPI covers the help request endpoints.
type RequestAPI interface {
	ListRequests(ctx context.Context, f domaintypes.RequestFilter) ([]domaintypes.HelpRequest, error)
	GetRequest(ctx context.Context, id string) (domaintypes.HelpRequest, error)
	CreateRequest(ctx context.Context, in domaintypes.HelpRequestCreate) (domaintypes.HelpRequest, error)
}

// OfferAPI covers the help offer endpoints.
type OfferAPI interface {
	ListOffers(ctx context.Context, f domaintypes.OfferFilter) ([]domaintypes.HelpOffer, error)
	CreateOffer(ctx context.Context, in domaintypes.HelpOfferCreate) (domaintypes.HelpOffer, error)
}

// APIClient is how we talk to the Aid-Connect backend, all with context.
type APIClient interface {
	AuthAPI
	RequestAPI
	OfferAPI
	Health(ctx context.Context) (domaintypes.Health, error)
}
