// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth issues and verifies the bearer tokens guarding the backend's
// protected routes. All signing parameters come from the resolved
// configuration; the package keeps no ambient state.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/engo-config/internal/app"
)

var (
	// ErrTokenInvalid covers every verification failure other than expiry:
	// wrong signature, wrong issuer, malformed token. Callers treat all of
	// them identically, so details are not leaked.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired indicates a syntactically valid token whose expiry has
	// passed.
	ErrTokenExpired = errors.New("token is expired")
)

// TokenManager signs and verifies HMAC-SHA256 JWTs. It is immutable after
// construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager from the backend configuration.
//
// Returns an error if the secret is empty or the TTL is not positive; both
// are enforced by the configuration schema, so a failure here indicates the
// manager was constructed outside the resolved-config path.
func NewTokenManager(cfg app.AppConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" || cfg.JWTTTL <= 0 {
		return nil, errors.New("invalid params for creating token manager")
	}

	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTTTL,
	}, nil
}

// Issue creates a signed token for the given subject.
//
// The token carries the standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the provided subject
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured TTL
func (m *TokenManager) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("empty subject")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}

// Verify validates a raw token string and returns its subject.
//
// Verification checks the HMAC signature, the issuer claim, and the expiry.
// Expired tokens return [ErrTokenExpired]; every other failure is normalised
// to [ErrTokenInvalid].
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrTokenInvalid
	}

	return subject, nil
}
