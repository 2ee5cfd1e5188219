package interfaces

import (
	"context"

	domaintypes "aidconnect/internal/domain/types"
)

// TokenSource hands the current bearer token to outbound calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// SessionService is the shared authentication context of the client.
type SessionService interface {
	TokenSource
	Register(ctx context.Context, in domaintypes.UserCreate) (domaintypes.User, error)
	Login(ctx context.Context, email, password string) (domaintypes.User, error)
	Logout() error
	Restore(ctx context.Context) (domaintypes.User, bool, error)
	Current() (domaintypes.User, bool)
	IsAuthenticated() bool
}
