package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/isavelev/go-cart-keeper/internal/logger"
)

// ErrNoSubjectClaim is returned when an ID token carries no usable uid.
var ErrNoSubjectClaim = errors.New("id token has no subject claim")

// TokenSource extracts identity snapshots from provider ID tokens without
// contacting the provider. The signature is not checked; this source is for
// development and offline runs where provider credentials are unavailable.
// Production deployments should use [FirebaseSource] instead.
type TokenSource struct {
	emitter

	logger *logger.Logger
}

// NewTokenSource creates a TokenSource.
func NewTokenSource(log *logger.Logger) *TokenSource {
	return &TokenSource{logger: log}
}

// Announce parses idToken's claims and emits the identity snapshot they
// describe. Malformed tokens are rejected without emitting.
func (s *TokenSource) Announce(idToken string) error {
	user, err := userFromTokenClaims(idToken)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "TokenSource.Announce").Msg("id token rejected")
		return err
	}

	s.emit(user)
	return nil
}

// AnnounceSignOut emits a signed-out event.
func (s *TokenSource) AnnounceSignOut() {
	s.emit(nil)
}

func userFromTokenClaims(idToken string) (*User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("parse id token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrNoSubjectClaim
	}

	user := &User{UID: sub}

	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	// Firebase ID tokens nest the sign-in method under the "firebase" claim.
	if fb, ok := claims["firebase"].(map[string]any); ok {
		if provider, ok := fb["sign_in_provider"].(string); ok {
			user.ProviderID = provider
		}
	}
	if user.ProviderID == "" {
		user.ProviderID = "password"
	}
	if user.ProviderID == "anonymous" {
		user.IsAnonymous = true
	}

	return user, nil
}
