package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and validates the signed admin session token
// stored in the panel's session cookie.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// TTL returns how long an issued session stays valid.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Issue creates a signed HS256 JWT with the Discord user ID as subject.
func (m *SessionManager) Issue(identity OAuthIdentity) (string, error) {
	if identity.ProviderID == "" {
		return "", fmt.Errorf("identity has no provider id")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ProviderID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: identity.Username,
	}
	if identity.AvatarURL != nil {
		claims.Avatar = *identity.AvatarURL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and validates a session token and returns the identity it carries.
func (m *SessionManager) Validate(tokenString string) (OAuthIdentity, error) {
	if tokenString == "" {
		return OAuthIdentity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return OAuthIdentity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return OAuthIdentity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return OAuthIdentity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}
	if claims.Subject == "" {
		return OAuthIdentity{}, fmt.Errorf("token has no subject")
	}

	identity := OAuthIdentity{
		ProviderID: claims.Subject,
		Username:   claims.Username,
	}
	if claims.Avatar != "" {
		avatar := claims.Avatar
		identity.AvatarURL = &avatar
	}
	return identity, nil
}

// GenerateState creates a random value for the OAuth state parameter.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
