package identity

// ManualSource is an in-process identity source. The embedding application
// (or a test) announces identity changes directly via Emit.
type ManualSource struct {
	emitter
}

// NewManualSource creates a ManualSource with no subscriber.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Emit delivers an identity-change event to the subscriber, if any.
// Pass nil to announce a sign-out.
func (s *ManualSource) Emit(user *User) {
	s.emit(user)
}
