package jwtauth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response bodies produced by the gate. Protected-route clients depend on
// these exact strings.
const (
	msgNoToken      = "Access Denied. No token provided."
	msgInvalidToken = "Invalid Token"
	msgUnauthorized = "You are an unauthorized user, sorry"
)

// RequireAuth returns a Gin middleware that guards protected routes.
//
// Outcomes per request:
//   - Authorization header absent or not "Bearer <token>": 401, the next
//     handler never runs.
//   - token fails verification (malformed, bad signature, expired): 400,
//     the failure is logged server-side. Signature mismatches land here
//     rather than on the 401 path; clients rely on that status split.
//   - token verifies but carries no identity: 401, plain text body.
//   - otherwise the verified claims are attached to the request under the
//     "user" key and the request proceeds.
func RequireAuth(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Generate or extract request ID for correlation
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		token, err := extractToken(c.Request, cfg)
		if err != nil {
			logAuthFailure(cfg, requestID, token, err, time.Since(startTime))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoToken})
			return
		}

		claims, err := Verify(token, cfg)
		if err != nil {
			logAuthFailure(cfg, requestID, token, err, time.Since(startTime))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msgInvalidToken})
			return
		}

		if claims.Empty() {
			logAuthFailure(cfg, requestID, token,
				NewValidationError(ErrEmptyClaims, "verified token carries no identity", nil),
				time.Since(startTime))
			c.String(http.StatusUnauthorized, msgUnauthorized)
			c.Abort()
			return
		}

		// Attach the identity to the request under the well-known key,
		// on both the gin context and the request context.
		ctx := WithClaims(c.Request.Context(), claims)
		ctx = WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(UserContextKey, claims)

		logAuthSuccess(cfg, requestID, claims, token, time.Since(startTime))

		c.Next()
	}
}

// logAuthSuccess logs a successful authentication event
func logAuthSuccess(cfg *Config, requestID string, claims *Claims, token string, latency time.Duration) {
	if cfg.Logger() == nil {
		return
	}

	logSecurityEvent(cfg.Logger(), SecurityEvent{
		EventType:    "success",
		Timestamp:    time.Now(),
		RequestID:    requestID,
		UserID:       claims.UserID,
		TokenPreview: token,
		Latency:      latency,
	})
}

// logAuthFailure logs a failed authentication event
func logAuthFailure(cfg *Config, requestID string, token string, err error, latency time.Duration) {
	if cfg.Logger() == nil {
		return
	}

	logSecurityEvent(cfg.Logger(), SecurityEvent{
		EventType:     "failure",
		Timestamp:     time.Now(),
		RequestID:     requestID,
		FailureReason: getErrorCode(err),
		TokenPreview:  token,
		Latency:       latency,
	})
}

// getErrorCode extracts the error code from a validation error
func getErrorCode(err error) string {
	if valErr, ok := err.(*ValidationError); ok {
		return string(valErr.Code)
	}
	return "UNKNOWN"
}
