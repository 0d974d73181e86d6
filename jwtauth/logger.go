package jwtauth

import (
	"time"

	"go.uber.org/zap"
)

// SecurityEvent represents a structured security log entry
type SecurityEvent struct {
	EventType     string        // "success" or "failure"
	Timestamp     time.Time     // Event timestamp
	RequestID     string        // Correlation ID
	UserID        uint          // Identity from claims (zero on failure)
	FailureReason string        // Error code (on failure)
	TokenPreview  string        // Redacted token preview
	Latency       time.Duration // Verification latency
}

// zapFields renders the event with the token redacted. Tokens are bearer
// credentials; a full token in a log file is a full credential leak.
func (e SecurityEvent) zapFields() []zap.Field {
	return []zap.Field{
		zap.String("event", e.EventType),
		zap.Time("timestamp", e.Timestamp),
		zap.String("request_id", e.RequestID),
		zap.Uint("user_id", e.UserID),
		zap.String("failure_reason", e.FailureReason),
		zap.String("token", redactToken(e.TokenPreview)),
		zap.Duration("latency", e.Latency),
	}
}

// redactToken redacts sensitive token data
func redactToken(token string) string {
	if len(token) == 0 {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}

// logSecurityEvent emits a security event via the configured logger
func logSecurityEvent(logger *zap.Logger, event SecurityEvent) {
	if logger == nil {
		return // Logging disabled
	}

	if event.EventType == "failure" {
		logger.Warn("authentication failed", event.zapFields()...)
	} else {
		logger.Info("authentication succeeded", event.zapFields()...)
	}
}
