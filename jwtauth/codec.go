package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// reservedClaimNames are handled explicitly by the codec and never copied
// into or out of the Custom map.
var reservedClaimNames = map[string]bool{
	"id": true, "email": true, "exp": true, "iat": true,
	"nbf": true, "iss": true, "aud": true, "sub": true, "jti": true,
}

// Sign encodes the claim set into an HS256 token signed with the shared
// secret. Issue and expiry timestamps are always embedded: a token with no
// expiry would stay valid forever once minted.
func Sign(claims *Claims, cfg *Config) (string, error) {
	if claims == nil {
		return "", NewValidationError(ErrMalformed, "cannot sign nil claims", nil)
	}

	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	expiresAt := claims.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(cfg.TokenTTL())
	}

	mapClaims := jwt.MapClaims{
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
	}
	if claims.UserID != 0 {
		mapClaims["id"] = claims.UserID
	}
	if claims.Email != "" {
		mapClaims["email"] = claims.Email
	}
	for name, value := range claims.Custom {
		if reservedClaimNames[name] {
			continue
		}
		mapClaims[name] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(cfg.secret)
	if err != nil {
		return "", NewValidationError(ErrMalformed, "failed to sign token", err)
	}
	return signed, nil
}

// Verify recomputes the signature over the token with the shared secret
// and reconstructs the claim set. It fails with a *ValidationError carrying
// ErrMalformed, ErrInvalidSignature or ErrExpired.
func Verify(tokenString string, cfg *Config) (*Claims, error) {
	if tokenString == "" {
		return nil, NewValidationError(ErrMissingToken, "token is empty", nil)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(cfg.ClockSkewLeeway()),
	)
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.secret, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}
	if !token.Valid {
		return nil, NewValidationError(ErrInvalidSignature, "token is invalid", nil)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewValidationError(ErrMalformed, "invalid claims format", nil)
	}
	return claimsFromMap(mapClaims), nil
}

// mapParseError converts golang-jwt parse failures into the codec's
// error taxonomy.
func mapParseError(err error) error {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewValidationError(ErrExpired, "token has expired", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return NewValidationError(ErrInvalidSignature, "signature verification failed", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return NewValidationError(ErrMalformed, "malformed token", err)
	}
	return NewValidationError(ErrMalformed, "malformed token", err)
}

// claimsFromMap converts jwt.MapClaims into a Claims value. JSON decodes
// all numbers as float64, so the user identifier comes back that way.
func claimsFromMap(mapClaims jwt.MapClaims) *Claims {
	claims := &Claims{Custom: make(map[string]any)}

	if id, ok := mapClaims["id"].(float64); ok && id > 0 {
		claims.UserID = uint(id)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	for name, value := range mapClaims {
		if reservedClaimNames[name] {
			continue
		}
		claims.Custom[name] = value
	}
	return claims
}
