// Package identity abstracts the external identity provider as a stream of
// identity-change events. The application subscribes exactly once at startup;
// every emission carries either the signed-in user's snapshot or nil for
// signed-out, and drives the session state machine.
package identity

import (
	"sync"

	"github.com/isavelev/go-cart-keeper/models"
)

// User is the provider-reported snapshot of the signed-in user.
type User struct {
	// UID is the provider-wide unique user identifier.
	UID string `json:"uid"`

	// Email is the user's email address, empty for anonymous users.
	Email string `json:"email"`

	// ProviderID names the sign-in method as reported by the provider
	// (e.g. "password", "google.com", "github.com", "anonymous").
	ProviderID string `json:"provider_id"`

	// IsAnonymous is true for guest (anonymous) sign-ins.
	IsAnonymous bool `json:"is_anonymous"`

	// EmailVerified reports whether the provider has verified the email.
	EmailVerified bool `json:"email_verified"`
}

// Provider maps the provider-reported sign-in method to the application's
// [models.AuthProvider] enum. Unknown methods map to password, matching the
// provider's default email/password flow.
func (u *User) Provider() models.AuthProvider {
	if u == nil {
		return models.ProviderNone
	}
	if u.IsAnonymous || u.ProviderID == "anonymous" {
		return models.ProviderGuest
	}

	switch u.ProviderID {
	case "google.com":
		return models.ProviderGoogle
	case "github.com":
		return models.ProviderGitHub
	default:
		return models.ProviderPassword
	}
}

// Source is a stream of identity-change events. Implementations invoke the
// subscribed callback with the new user snapshot on sign-in and with nil on
// sign-out. The subscription lives for the whole process; there is no
// unsubscribe.
type Source interface {
	Subscribe(fn func(user *User))
}

// emitter is the shared subscription holder embedded by every Source
// implementation in this package.
type emitter struct {
	mu sync.RWMutex
	fn func(user *User)
}

func (e *emitter) Subscribe(fn func(user *User)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fn = fn
}

func (e *emitter) emit(user *User) {
	e.mu.RLock()
	fn := e.fn
	e.mu.RUnlock()

	if fn != nil {
		fn(user)
	}
}
