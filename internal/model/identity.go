package model

// Identity is the authenticated caller as asserted by the external identity
// provider's session token. ID is the provider's subject id.
type Identity struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}
