package jwtauth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// UserContextKey is the well-known gin context key under which the auth
// gate attaches the verified identity. Downstream handlers learn "who is
// calling" through this entry and nothing else.
const UserContextKey = "user"

// contextKey is an unexported type for context keys to prevent collisions
type contextKey string

const (
	claimsContextKey    contextKey = "github.com/Rahulstark2/blogging-platform-backend/jwtauth:claims"
	requestIDContextKey contextKey = "github.com/Rahulstark2/blogging-platform-backend/jwtauth:request_id"
)

// WithClaims stores verified claims in the request context.
// Claims are immutable and should not be modified by downstream handlers.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims retrieves verified claims from the request context.
// Returns nil, false if claims are not present or have wrong type.
// Always check the ok return value before using claims.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// CurrentUser retrieves the verified identity attached by the auth gate
// from the gin context. Returns nil, false on unprotected routes or when
// the gate has not run.
func CurrentUser(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}

// MustCurrentUser retrieves the verified identity and panics if absent.
// Use only on routes guarded by the auth gate.
func MustCurrentUser(c *gin.Context) *Claims {
	claims, ok := CurrentUser(c)
	if !ok {
		panic("jwtauth: user not found in context")
	}
	return claims
}

// WithRequestID stores a request ID in context for correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
