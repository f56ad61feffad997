package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"connectfood/pkg/errors"
	"connectfood/pkg/logger"
)

// Service issues and validates the self-contained session credential: an
// HS256 JWT with the email as subject and the role as a custom claim.
// It is stateless; a token stays valid until its natural expiry.
type Service struct {
	secret []byte
	expiry time.Duration
}

func NewService(secret string, expirySeconds int64) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) Issue(email, role string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign session token", err)
	}

	return signed, nil
}

// Validate returns the email and role carried by the token. Malformed,
// mis-signed and expired tokens all come back as INVALID_TOKEN; the
// underlying cause only shows up in debug logs.
func (s *Service) Validate(tokenString string) (string, string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Session token rejected: %v", err)
		return "", "", errors.InvalidToken("Invalid or expired token", err)
	}

	if claims.Subject == "" || claims.Role == "" {
		return "", "", errors.InvalidToken("Invalid or expired token", nil)
	}

	return claims.Subject, claims.Role, nil
}
