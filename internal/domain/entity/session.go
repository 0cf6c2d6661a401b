package entity

import "time"

// Session is an authenticated identity-provider session.
type Session struct {
	Subject      string    `json:"subject"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// SessionEvent is a session-change notification from the identity provider.
// SignedIn is false when the subject's session ended.
type SessionEvent struct {
	Subject     string
	Email       string
	DisplayName string
	SignedIn    bool
}

// SessionClaims are the verified claims of a bearer token.
type SessionClaims struct {
	Subject     string
	Email       string
	DisplayName string
	Role        *Role
}

// AuthSnapshot is the published current-user state for one subject.
// User is nil when no one is signed in.
type AuthSnapshot struct {
	User      *User `json:"user"`
	IsLoading bool  `json:"isLoading"`
}

// IsAuthenticated reports whether a user is present.
func (s AuthSnapshot) IsAuthenticated() bool {
	return s.User != nil
}
