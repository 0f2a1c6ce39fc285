package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/logger"
)

// FirebaseSource verifies provider-issued ID tokens against Firebase Auth and
// emits the resulting identity snapshots. Announce is called by the outer
// application whenever it obtains a fresh ID token (sign-in, token refresh);
// AnnounceSignOut is called on sign-out.
type FirebaseSource struct {
	emitter

	auth   *firebaseauth.Client
	logger *logger.Logger
}

// NewFirebaseSource constructs the Firebase app and auth client for the
// configured project. A credentials file is optional; without one the SDK
// falls back to application-default credentials.
func NewFirebaseSource(ctx context.Context, cfg config.Identity, log *logger.Logger) (*FirebaseSource, error) {
	fbCfg := &firebase.Config{ProjectID: cfg.ProjectID}

	var app *firebase.App
	var err error
	if cfg.CredentialsFile != "" {
		app, err = firebase.NewApp(ctx, fbCfg, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		app, err = firebase.NewApp(ctx, fbCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("firebase app init: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth init: %w", err)
	}

	return &FirebaseSource{auth: authClient, logger: log}, nil
}

// Announce verifies idToken and emits the identity snapshot it describes.
// Verification failures are returned to the caller and nothing is emitted,
// so an invalid token can never transition the session.
func (s *FirebaseSource) Announce(ctx context.Context, idToken string) error {
	token, err := s.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "FirebaseSource.Announce").Msg("id token rejected")
		return fmt.Errorf("verify id token: %w", err)
	}

	user := userFromVerifiedToken(token)
	s.logger.Debug().
		Str("func", "FirebaseSource.Announce").
		Str("uid", user.UID).
		Str("provider", user.ProviderID).
		Msg("identity change announced")

	s.emit(user)
	return nil
}

// AnnounceSignOut emits a signed-out event.
func (s *FirebaseSource) AnnounceSignOut() {
	s.emit(nil)
}

func userFromVerifiedToken(token *firebaseauth.Token) *User {
	user := &User{
		UID:        token.UID,
		ProviderID: token.Firebase.SignInProvider,
	}
	if user.ProviderID == "anonymous" {
		user.IsAnonymous = true
	}

	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user
}
