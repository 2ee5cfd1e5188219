package types

import "time"

// UserProfile is the public part of an account.
type UserProfile struct {
	Name      string   `json:"name" validate:"required,notblank"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Location  Location `json:"location"`
	Bio       *string  `json:"bio,omitempty"`
}

// UserPreferences holds matching preferences.
type UserPreferences struct {
	MaxDistance          int      `json:"max_distance"`
	Categories           []string `json:"categories"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
}

// UserStats are the aggregate counters the backend keeps per user.
type UserStats struct {
	RequestsMade    int     `json:"requests_made"`
	OffersMade      int     `json:"offers_made"`
	HelpProvided    int     `json:"help_provided"`
	CommunityRating float64 `json:"community_rating"`
	TotalRatings    int     `json:"total_ratings"`
}

// UserVerification tracks which identity checks passed.
type UserVerification struct {
	PhoneVerified bool    `json:"phone_verified"`
	EmailVerified bool    `json:"email_verified"`
	IDVerified    bool    `json:"id_verified"`
	TrustScore    float64 `json:"trust_score"`
}

// User is the account record returned by /api/auth/me.
type User struct {
	UserID       UserID           `json:"user_id"`
	Email        string           `json:"email"`
	Phone        *string          `json:"phone,omitempty"`
	Profile      UserProfile      `json:"profile"`
	Preferences  UserPreferences  `json:"preferences"`
	Verification UserVerification `json:"verification"`
	Stats        UserStats        `json:"stats"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActive   time.Time        `json:"last_active"`
	IsActive     bool             `json:"is_active"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Phone    *string     `json:"phone,omitempty"`
	Profile  UserProfile `json:"profile"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Token is what login and register return.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      UserID `json:"user_id"`
}
