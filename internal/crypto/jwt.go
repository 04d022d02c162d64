package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Session is what a signed-in client carries between requests: who it is and
// which interface language it saved.
type Session struct {
	UserID int64
	Locale string
}

// sessionClaims keeps the user id in the standard subject claim. Locale is
// empty for users without saved settings.
type sessionClaims struct {
	jwt.RegisteredClaims
	Locale string `json:"locale,omitempty"`
}

// IssueToken signs a session token that expires after ttl.
func IssueToken(s Session, secret string, ttl time.Duration) (string, error) {
	if s.UserID <= 0 {
		return "", errors.New("session has no user")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(s.UserID, 10),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Locale: s.Locale,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies an HS256 session token and returns the session in it.
// Every failure is reported as ErrInvalidToken.
func ParseToken(tokenString, secret string) (Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Session{}, ErrInvalidToken
	}

	return Session{UserID: id, Locale: claims.Locale}, nil
}
