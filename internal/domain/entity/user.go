// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ProviderType identifies how an account authenticates.
type ProviderType string

const (
	ProviderLocal  ProviderType = "local"
	ProviderGoogle ProviderType = "google"
	ProviderGithub ProviderType = "github"
)

// User is an account that can browse, buy, review, and sell products.
// Email and PasswordHash are only set for local accounts; GoogleID/GithubID
// are only set for accounts created through the matching OAuth provider.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Nickname     string
	Provider     ProviderType
	GoogleID     string
	GithubID     string
}

// CanAuthenticate reports whether the account satisfies the credential
// invariant: either a local password is present, or the account belongs to
// an external provider.
func (u *User) CanAuthenticate() bool {
	if u.Provider == ProviderLocal {
		return u.PasswordHash != ""
	}

	return u.Provider == ProviderGoogle || u.Provider == ProviderGithub
}
