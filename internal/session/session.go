// Package session holds the application's identity state machine.
//
// The machine starts Unresolved and, driven exclusively by identity-change
// events, enters Authenticated or Unauthenticated. Later events re-enter one
// of the two resolved states; the machine never returns to Unresolved. Every
// transition bumps the session epoch so that in-flight work scoped to an
// earlier session can be recognised and discarded.
package session

import (
	"sync"

	"github.com/isavelev/go-cart-keeper/internal/identity"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

// Manager owns the current session and notifies transition listeners.
// Apply is the single entry point for transitions; only the identity event
// stream may call it.
type Manager struct {
	// applyMu serializes whole transitions including listener callbacks,
	// giving them run-to-completion semantics.
	applyMu sync.Mutex

	stateMu sync.RWMutex
	current models.Session

	listenerMu sync.RWMutex
	listeners  []func(models.Session)

	logger *logger.Logger
}

// NewManager creates a Manager in the Unresolved state.
func NewManager(log *logger.Logger) *Manager {
	return &Manager{
		current: models.Session{Provider: models.ProviderNone},
		logger:  log,
	}
}

// Current returns a copy of the current session.
func (m *Manager) Current() models.Session {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.current
}

// OnTransition registers fn to run synchronously after every transition with
// a copy of the new session. Listeners must be registered before the identity
// subscription starts; there is no deregistration.
func (m *Manager) OnTransition(fn func(models.Session)) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Apply transitions the session according to the identity event: a non-nil
// user enters Authenticated, nil enters Unauthenticated. Either way the
// session becomes resolved and the epoch increases by one.
func (m *Manager) Apply(user *identity.User) {
	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	m.stateMu.Lock()
	next := models.Session{
		Resolved: true,
		Epoch:    m.current.Epoch + 1,
		Provider: models.ProviderNone,
	}
	if user != nil {
		provider := user.Provider()
		next.UserID = user.UID
		next.Email = user.Email
		next.Provider = provider
		next.IsGuest = provider == models.ProviderGuest
		next.Authenticated = true
	}
	m.current = next
	m.stateMu.Unlock()

	m.logger.Info().
		Str("func", "session.Manager.Apply").
		Str("user_id", next.UserID).
		Str("provider", string(next.Provider)).
		Bool("authenticated", next.Authenticated).
		Uint64("epoch", next.Epoch).
		Msg("session transition")

	m.listenerMu.RLock()
	listeners := make([]func(models.Session), len(m.listeners))
	copy(listeners, m.listeners)
	m.listenerMu.RUnlock()

	for _, fn := range listeners {
		fn(next)
	}
}
