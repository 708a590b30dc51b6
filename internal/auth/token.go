package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Domenick1991/booktofly/internal/domain"
)

// Role is the claim that scopes what a token authorizes. The *Change roles
// are issued only by the password-reset flow and authorize nothing else.
type Role string

const (
	RoleUser        Role = "User"
	RoleAdmin       Role = "Admin"
	RoleUserChange  Role = "UserChange"
	RoleAdminChange Role = "AdminChange"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	Subject string
	Role    Role
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and verifies HS256-signed identity tokens. Verification
// checks signature, issuer, audience and expiry; an expired or mis-signed
// token is rejected, never treated as anonymous.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenIssuer(secret []byte, issuer, audience string) *TokenIssuer {
	return &TokenIssuer{secret: secret, issuer: issuer, audience: audience}
}

func (i *TokenIssuer) Issue(subject string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) Verify(tokenString string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return Identity{Subject: c.Subject, Role: Role(c.Role)}, nil
}
