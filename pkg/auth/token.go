package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	issuer    = "portfolio-contact-backend"
)

var ErrSecretNotConfigured = errors.New("auth: admin secret not configured")

// AdminClaims are the claims carried by admin tokens
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 admin tokens
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured
func (i *Issuer) Enabled() bool {
	return len(i.secret) > 0
}

// Issue creates an admin token for subject valid for ttl
func (i *Issuer) Issue(subject string, ttl time.Duration) (string, error) {
	if !i.Enabled() {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates tokenString and returns its claims
func (i *Issuer) Parse(tokenString string) (*AdminClaims, error) {
	if !i.Enabled() {
		return nil, ErrSecretNotConfigured
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}

	return claims, nil
}
