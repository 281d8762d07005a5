package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndVerify(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := j.GetSubject(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_Expiry(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := issued
	clock := func() time.Time { return current }

	j := New(WithSecretKey("test-secret"), WithExpiration(30*time.Minute), WithClock(clock))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)

	_, err = j.GetSubject(ctx, token)
	assert.NoError(t, err, "fresh token must verify")

	current = issued.Add(29*time.Minute + 59*time.Second)
	_, err = j.GetSubject(ctx, token)
	assert.NoError(t, err, "token must verify just before expiry")

	current = issued.Add(30 * time.Minute)
	_, err = j.GetSubject(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired, "token must be expired at expiry")

	current = issued.Add(31 * time.Minute)
	_, err = j.GetSubject(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWT_AlreadyExpired(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_InvalidTokens(t *testing.T) {
	j := New(WithSecretKey("secret1"))
	ctx := context.Background()

	otherSecret, err := New(WithSecretKey("secret2")).Generate(ctx, "a@x.com")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret1"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "a@x.com",
	}).SignedString([]byte("secret1"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret1"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid.token.string"},
		{"empty", ""},
		{"wrong secret", otherSecret},
		{"none algorithm", noneAlg},
		{"other algorithm", hs512},
		{"missing expiry", noExp},
		{"missing subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := j.GetSubject(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.Empty(t, subject)
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
