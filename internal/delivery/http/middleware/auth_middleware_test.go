package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	token *jwt.Token
	err   error
}

func (f *fakeTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return f.token, f.err
}

func validToken(claims jwt.MapClaims) *jwt.Token {
	return &jwt.Token{Claims: claims, Valid: true}
}

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/customers/1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func TestAuthenticate_SetsActorFromSubClaim(t *testing.T) {
	actorID := uuid.New()
	m := NewAuthMiddleware(&fakeTokenService{token: validToken(jwt.MapClaims{"sub": actorID.String()})}, authConfig())

	c, _ := newAuthContext(t, "Bearer sometoken")

	var nextCalled bool
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)

	got, ok := GetActorID(c)
	require.True(t, ok)
	assert.Equal(t, actorID, got)
}

func TestAuthenticate_FallsBackToUserIDClaim(t *testing.T) {
	actorID := uuid.New()
	m := NewAuthMiddleware(&fakeTokenService{token: validToken(jwt.MapClaims{"user_id": actorID.String()})}, authConfig())

	c, _ := newAuthContext(t, "Bearer sometoken")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)

	got, ok := GetActorID(c)
	require.True(t, ok)
	assert.Equal(t, actorID, got)
}

func TestAuthenticate_Rejections(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name    string
		header  string
		tokenFn *fakeTokenService
	}{
		{name: "missing header", header: "", tokenFn: &fakeTokenService{token: validToken(jwt.MapClaims{"sub": actorID.String()})}},
		{name: "not a bearer token", header: "Basic abc", tokenFn: &fakeTokenService{token: validToken(jwt.MapClaims{"sub": actorID.String()})}},
		{name: "validation fails", header: "Bearer bad", tokenFn: &fakeTokenService{err: errors.New("expired")}},
		{name: "no actor claim", header: "Bearer sometoken", tokenFn: &fakeTokenService{token: validToken(jwt.MapClaims{})}},
		{name: "malformed actor id", header: "Bearer sometoken", tokenFn: &fakeTokenService{token: validToken(jwt.MapClaims{"sub": "not-a-uuid"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(tt.tokenFn, authConfig())
			c, rec := newAuthContext(t, tt.header)

			var nextCalled bool
			err := m.Authenticate(func(c echo.Context) error {
				nextCalled = true

				return nil
			})(c)
			require.NoError(t, err)
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
