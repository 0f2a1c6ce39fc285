package service

import "errors"

var (
	// ErrGuestLimitReached is returned by TodoService.Add when a guest
	// session is already at its todo cap. It is a distinct signal so the
	// presentation layer can prompt for account creation instead of
	// showing a generic failure.
	ErrGuestLimitReached = errors.New("guest todo limit reached")
)
