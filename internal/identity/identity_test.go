package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isavelev/go-cart-keeper/models"
)

// ── Provider mapping ─────────────────────────────────────────────────────────

func TestUser_Provider(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want models.AuthProvider
	}{
		{name: "nil user", user: nil, want: models.ProviderNone},
		{name: "google", user: &User{ProviderID: "google.com"}, want: models.ProviderGoogle},
		{name: "github", user: &User{ProviderID: "github.com"}, want: models.ProviderGitHub},
		{name: "password", user: &User{ProviderID: "password"}, want: models.ProviderPassword},
		{name: "anonymous provider id", user: &User{ProviderID: "anonymous"}, want: models.ProviderGuest},
		{name: "anonymous flag wins", user: &User{ProviderID: "password", IsAnonymous: true}, want: models.ProviderGuest},
		{name: "unknown defaults to password", user: &User{ProviderID: "saml.corp"}, want: models.ProviderPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Provider())
		})
	}
}

// ── ManualSource ─────────────────────────────────────────────────────────────

func TestManualSource_DeliversEvents(t *testing.T) {
	src := NewManualSource()

	var got []*User
	src.Subscribe(func(user *User) { got = append(got, user) })

	alice := &User{UID: "u1", ProviderID: "password"}
	src.Emit(alice)
	src.Emit(nil) // sign-out

	require.Len(t, got, 2)
	assert.Equal(t, alice, got[0])
	assert.Nil(t, got[1])
}

func TestManualSource_EmitWithoutSubscriberIsNoop(t *testing.T) {
	src := NewManualSource()
	assert.NotPanics(t, func() { src.Emit(&User{UID: "u1"}) })
}
