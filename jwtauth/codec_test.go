package jwtauth

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)

	tests := []struct {
		name   string
		claims *Claims
	}{
		{
			name:   "identity only",
			claims: &Claims{UserID: 1, Email: "a@b.com"},
		},
		{
			name: "identity with custom scalar claims",
			claims: &Claims{
				UserID: 42,
				Email:  "custom@b.com",
				Custom: map[string]any{"role": "editor", "plan_tier": float64(3)},
			},
		},
		{
			name:   "email only",
			claims: &Claims{Email: "no-id@b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Sign(tt.claims, cfg)
			if err != nil {
				t.Fatalf("Sign() error: %v", err)
			}

			got, err := Verify(token, cfg)
			if err != nil {
				t.Fatalf("Verify() error: %v", err)
			}

			if got.UserID != tt.claims.UserID {
				t.Errorf("UserID = %d, want %d", got.UserID, tt.claims.UserID)
			}
			if got.Email != tt.claims.Email {
				t.Errorf("Email = %q, want %q", got.Email, tt.claims.Email)
			}
			for name, want := range tt.claims.Custom {
				if got.Custom[name] != want {
					t.Errorf("Custom[%q] = %v, want %v", name, got.Custom[name], want)
				}
			}
		})
	}
}

func TestSignEmbedsExpiry(t *testing.T) {
	cfg := newTestConfig(t, WithTokenTTL(2*time.Hour))

	before := time.Now()
	token, err := Sign(&Claims{UserID: 1, Email: "exp@b.com"}, cfg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	claims, err := Verify(token, cfg)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if claims.IssuedAt.IsZero() {
		t.Error("IssuedAt not embedded in token")
	}
	if claims.ExpiresAt.IsZero() {
		t.Fatal("ExpiresAt not embedded in token, sessions would never lapse")
	}

	wantExpiry := before.Add(2 * time.Hour)
	if claims.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || claims.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("ExpiresAt = %v, want within a minute of %v", claims.ExpiresAt, wantExpiry)
	}
}

func TestSignUsesHS256(t *testing.T) {
	cfg := newTestConfig(t)

	tokenStr, err := Sign(&Claims{UserID: 1, Email: "alg@b.com"}, cfg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	token, _, err := new(jwt.Parser).ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		t.Fatalf("ParseUnverified() error: %v", err)
	}
	if token.Method.Alg() != "HS256" {
		t.Errorf("signing algorithm = %q, want %q", token.Method.Alg(), "HS256")
	}
}

func TestSignNilClaims(t *testing.T) {
	cfg := newTestConfig(t)

	if _, err := Sign(nil, cfg); err == nil {
		t.Fatal("Sign(nil) should fail")
	}
}

func TestVerifyErrorTaxonomy(t *testing.T) {
	cfg := newTestConfig(t, WithClockSkew(0))

	wrongSecret := []byte("the-wrong-secret-key-of-enough-size!!")

	tests := []struct {
		name     string
		token    string
		wantCode ErrorCode
	}{
		{
			name: "token signed with a different secret",
			token: signRawToken(t, wrongSecret, jwt.MapClaims{
				"id": float64(1), "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantCode: ErrInvalidSignature,
		},
		{
			name:     "two dot-separated segments",
			token:    "header.payload",
			wantCode: ErrMalformed,
		},
		{
			name:     "empty token",
			token:    "",
			wantCode: ErrMissingToken,
		},
		{
			name: "expired token",
			token: signRawToken(t, testSecret, jwt.MapClaims{
				"id": float64(1), "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantCode: ErrExpired,
		},
		{
			name:     "tampered payload",
			token:    tamperPayload(t, cfg),
			wantCode: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(tt.token, cfg)
			if err == nil {
				t.Fatal("Verify() should fail")
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if valErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", valErr.Code, tt.wantCode)
			}
		})
	}
}

// tamperPayload signs a valid token and swaps in a re-encoded claim
// segment naming a different user, leaving the original signature intact.
func tamperPayload(t *testing.T, cfg *Config) string {
	t.Helper()
	token, err := Sign(&Claims{UserID: 9, Email: "tamper@b.com"}, cfg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token segments = %d, want 3", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}
	forged := bytes.Replace(payload, []byte(`"tamper@b.com"`), []byte(`"forged@b.com"`), 1)
	if bytes.Equal(forged, payload) {
		t.Fatal("payload tampering had no effect")
	}
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)
	return strings.Join(parts, ".")
}

func TestVerifyClockSkewLeeway(t *testing.T) {
	cfg := newTestConfig(t, WithClockSkew(2*time.Minute))

	// Expired 30 seconds ago, inside the configured leeway.
	token := signRawToken(t, testSecret, jwt.MapClaims{
		"id":    float64(3),
		"email": "skew@b.com",
		"exp":   time.Now().Add(-30 * time.Second).Unix(),
	})

	claims, err := Verify(token, cfg)
	if err != nil {
		t.Fatalf("Verify() within leeway should succeed, got: %v", err)
	}
	if claims.UserID != 3 {
		t.Errorf("UserID = %d, want 3", claims.UserID)
	}
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	cfg := newTestConfig(t)

	// alg: none with an empty signature segment.
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": float64(1), "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Failed to build none-algorithm token: %v", err)
	}

	if _, err := Verify(noneToken, cfg); err == nil {
		t.Fatal("Verify() must reject a none-algorithm token")
	}
}

func BenchmarkVerify(b *testing.B) {
	cfg, err := NewConfig(WithSecret(testSecret))
	if err != nil {
		b.Fatalf("Failed to create config: %v", err)
	}
	token, err := Sign(&Claims{UserID: 1, Email: "bench@b.com"}, cfg)
	if err != nil {
		b.Fatalf("Sign() error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Verify(token, cfg); err != nil {
			b.Fatalf("Verify() error: %v", err)
		}
	}
}
