package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connectfood/internal/infrastructure/token"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *token.Service, echo.HandlerFunc) {
	t.Helper()
	tokens := token.NewService("test-secret", 3600)
	m := NewAuthMiddleware(tokens)

	next := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"email": c.Get("email"),
			"role":  c.Get("role"),
		})
	}
	return m, tokens, next
}

func performRequest(m *AuthMiddleware, next echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/donations/my", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(next)(c)
	return rec, err
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m, _, next := newAuthFixture(t)

	_, err := performRequest(m, next, "")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateBadFormat(t *testing.T) {
	m, _, next := newAuthFixture(t)

	_, err := performRequest(m, next, "Token abc")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m, _, next := newAuthFixture(t)

	_, err := performRequest(m, next, "Bearer garbage")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	m, tokens, next := newAuthFixture(t)

	signed, err := tokens.Issue("x@y.com", "recipient")
	require.NoError(t, err)

	rec, err := performRequest(m, next, "Bearer "+signed)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "x@y.com")
	assert.Contains(t, rec.Body.String(), "recipient")
}
