package service

// TokenGenerator mints opaque session identifiers. Tokens carry no
// embedded claims; the session row is the source of truth.
type TokenGenerator interface {
	// Generate returns a new unguessable token.
	Generate() (string, error)
}
