package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		session Session
	}{
		{"with locale", Session{UserID: 42, Locale: "ja"}},
		{"without locale", Session{UserID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(tt.session, "test-secret", time.Hour)
			if err != nil {
				t.Fatalf("IssueToken() unexpected error: %v", err)
			}

			got, err := ParseToken(token, "test-secret")
			if err != nil {
				t.Fatalf("ParseToken() unexpected error: %v", err)
			}
			if got != tt.session {
				t.Errorf("ParseToken() = %+v, want %+v", got, tt.session)
			}
		})
	}
}

func TestIssueTokenUsesSubject(t *testing.T) {
	token, err := IssueToken(Session{UserID: 42, Locale: "de"}, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		t.Fatalf("ParseUnverified() unexpected error: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want 42", claims.Subject)
	}
	if claims.Locale != "de" {
		t.Errorf("Locale = %q, want de", claims.Locale)
	}
	if claims.Issuer != tokenIssuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, tokenIssuer)
	}
}

func TestIssueTokenRequiresUser(t *testing.T) {
	if _, err := IssueToken(Session{Locale: "en"}, "test-secret", time.Hour); err == nil {
		t.Error("IssueToken() expected error for a session without user")
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims sessionClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestParseTokenRejects(t *testing.T) {
	secret := "test-secret"
	valid := func() sessionClaims {
		return sessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "7",
				Issuer:    tokenIssuer,
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
	}
	hs256 := func(mutate func(c *sessionClaims)) func() string {
		return func() string {
			c := valid()
			mutate(&c)
			return signClaims(t, jwt.SigningMethodHS256, []byte(secret), c)
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{"garbage", func() string { return "not-a-valid-token" }},
		{"wrong secret", func() string {
			return signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), valid())
		}},
		{"expired", hs256(func(c *sessionClaims) { c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute)) })},
		{"no expiry", hs256(func(c *sessionClaims) { c.ExpiresAt = nil })},
		{"wrong issuer", hs256(func(c *sessionClaims) { c.Issuer = "wrong-issuer" })},
		{"wrong audience", hs256(func(c *sessionClaims) { c.Audience = jwt.ClaimStrings{"wrong-audience"} })},
		{"missing subject", hs256(func(c *sessionClaims) { c.Subject = "" })},
		{"non-numeric subject", hs256(func(c *sessionClaims) { c.Subject = "alice" })},
		{"zero subject", hs256(func(c *sessionClaims) { c.Subject = "0" })},
		{"other hmac", func() string {
			return signClaims(t, jwt.SigningMethodHS512, []byte(secret), valid())
		}},
		{"unsigned", func() string {
			return signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token(), secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
