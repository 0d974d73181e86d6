package jwtauth

import "time"

// Claims is the identity carried by a verified bearer token. It is built
// at signin, embedded in the signed token, and reconstructed by the auth
// gate on every protected request. It is never persisted.
type Claims struct {
	UserID    uint           // Authenticated user identifier (id claim)
	Email     string         // User email (email claim)
	IssuedAt  time.Time      // Issue time (iat claim)
	ExpiresAt time.Time      // Expiration time (exp claim)
	Custom    map[string]any // Additional application-specific claims
}

// Empty reports whether the claim set carries no identity at all.
// The auth gate rejects such tokens even when their signature verifies:
// a token that names nobody authorizes nobody.
func (c *Claims) Empty() bool {
	return c == nil || (c.UserID == 0 && c.Email == "" && len(c.Custom) == 0)
}
