package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isavelev/go-cart-keeper/internal/identity"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

func TestNewManager_StartsUnresolved(t *testing.T) {
	m := NewManager(logger.Nop())

	s := m.Current()
	assert.False(t, s.Resolved)
	assert.False(t, s.Authenticated)
	assert.Equal(t, models.ProviderNone, s.Provider)
	assert.Zero(t, s.Epoch)
	assert.Empty(t, s.PersistID())
}

func TestApply_SignIn(t *testing.T) {
	m := NewManager(logger.Nop())

	m.Apply(&identity.User{UID: "u1", Email: "a@b.c", ProviderID: "google.com"})

	s := m.Current()
	assert.True(t, s.Resolved)
	assert.True(t, s.Authenticated)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, models.ProviderGoogle, s.Provider)
	assert.False(t, s.IsGuest)
	assert.Equal(t, uint64(1), s.Epoch)
	assert.Equal(t, "u1", s.PersistID())
}

func TestApply_SignOut(t *testing.T) {
	m := NewManager(logger.Nop())
	m.Apply(&identity.User{UID: "u1", ProviderID: "password"})

	m.Apply(nil)

	s := m.Current()
	assert.True(t, s.Resolved, "session stays resolved after sign-out")
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.UserID)
	assert.Equal(t, models.ProviderNone, s.Provider)
	assert.Empty(t, s.PersistID())
}

func TestApply_GuestNeverPersists(t *testing.T) {
	m := NewManager(logger.Nop())

	m.Apply(&identity.User{UID: "guest-7", ProviderID: "anonymous", IsAnonymous: true})

	s := m.Current()
	assert.True(t, s.Authenticated)
	assert.True(t, s.IsGuest)
	assert.Equal(t, models.ProviderGuest, s.Provider)
	assert.Empty(t, s.PersistID(), "guest sessions must never be persisted")
}

func TestApply_EpochIncreasesEveryTransition(t *testing.T) {
	m := NewManager(logger.Nop())

	m.Apply(&identity.User{UID: "a", ProviderID: "password"})
	m.Apply(nil)
	m.Apply(&identity.User{UID: "b", ProviderID: "password"})

	assert.Equal(t, uint64(3), m.Current().Epoch)
}

func TestOnTransition_ListenersSeeEachTransition(t *testing.T) {
	m := NewManager(logger.Nop())

	var seen []models.Session
	m.OnTransition(func(s models.Session) { seen = append(seen, s) })

	m.Apply(&identity.User{UID: "u1", ProviderID: "password"})
	m.Apply(nil)

	require.Len(t, seen, 2)
	assert.Equal(t, "u1", seen[0].UserID)
	assert.True(t, seen[0].Authenticated)
	assert.False(t, seen[1].Authenticated)
	assert.Greater(t, seen[1].Epoch, seen[0].Epoch)
}

func TestOnTransition_ListenerObservesCurrentState(t *testing.T) {
	m := NewManager(logger.Nop())

	// the manager's state must already be updated when listeners run
	m.OnTransition(func(s models.Session) {
		assert.Equal(t, s, m.Current())
	})

	m.Apply(&identity.User{UID: "u1", ProviderID: "password"})
}
