package models

// AuthProvider identifies how the current user authenticated.
type AuthProvider string

const (
	// ProviderPassword is email/password authentication.
	ProviderPassword AuthProvider = "password"
	// ProviderGoogle is Google OAuth.
	ProviderGoogle AuthProvider = "google"
	// ProviderGitHub is GitHub OAuth.
	ProviderGitHub AuthProvider = "github"
	// ProviderGuest is the identity provider's anonymous sign-in.
	ProviderGuest AuthProvider = "guest"
	// ProviderNone means no user is signed in.
	ProviderNone AuthProvider = "none"
)

// Session is the in-memory view of the current identity context.
// It is a value type: holders receive a copy and cannot mutate the
// session manager's state through it.
type Session struct {
	// UserID is the identity provider's uid of the signed-in user.
	// Empty for unresolved and unauthenticated sessions.
	UserID string `json:"user_id"`

	// Email is the signed-in user's email address, if the provider
	// reported one.
	Email string `json:"email"`

	// Provider identifies the authentication method of this session.
	Provider AuthProvider `json:"provider"`

	// IsGuest is true for anonymous (guest) sessions. Guests keep their
	// collections in memory only and are never persisted.
	IsGuest bool `json:"is_guest"`

	// Resolved becomes true after the first identity event and never
	// reverts. Collections must not be persisted while Resolved is false.
	Resolved bool `json:"resolved"`

	// Authenticated is true when a user (including a guest) is signed in.
	Authenticated bool `json:"authenticated"`

	// Epoch increases by one on every session transition. In-flight
	// persistence work tagged with an older epoch is discarded.
	Epoch uint64 `json:"epoch"`
}

// PersistID returns the uid under which collections may be persisted.
// An empty result means "do not persist": the session is unresolved,
// signed out, or a guest.
func (s Session) PersistID() string {
	if !s.Resolved || !s.Authenticated || s.IsGuest {
		return ""
	}
	return s.UserID
}
