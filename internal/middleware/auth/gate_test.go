package authmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/tokens"
)

func newGate() (*Gate, *tokens.Codec) {
	codec := tokens.NewCodec([]byte("access"), []byte("refresh"))
	return NewGate(codec), codec
}

func run(t *testing.T, g *Gate, target, authz string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := g.Middleware()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return c, called, err
}

func TestGate_PublicPaths(t *testing.T) {
	g, _ := newGate()

	for _, p := range []string{
		"/auth/register",
		"/auth/login",
		"/auth/refresh-token",
		"/auth/login?next=/profile",
		"/api-docs",
		"/api-docs/index.html",
		"/health/live",
	} {
		_, called, err := run(t, g, p, "")
		assert.NoError(t, err, p)
		assert.True(t, called, p)
	}
}

func TestGate_PublicIsExactMatch(t *testing.T) {
	g, _ := newGate()

	for _, p := range []string{"/auth/register/x", "/auth/logins", "/api-docsx", "/profile?x=/auth/login"} {
		_, called, err := run(t, g, p, "")
		assert.ErrorIs(t, err, apperr.ErrBadAuthHeader, p)
		assert.False(t, called, p)
	}
}

func TestGate_Rejections(t *testing.T) {
	g, codec := newGate()
	refresh, err := codec.IssueRefresh(tokens.Identity{Username: "alice01", ID: 1})
	require.NoError(t, err)

	tests := []struct {
		name  string
		authz string
		want  error
	}{
		{name: "missing", authz: "", want: apperr.ErrBadAuthHeader},
		{name: "no scheme", authz: "token", want: apperr.ErrBadAuthHeader},
		{name: "wrong scheme", authz: "Basic abc", want: apperr.ErrBadAuthHeader},
		{name: "empty token", authz: "Bearer ", want: apperr.ErrBadAuthHeader},
		{name: "garbage", authz: "Bearer garbage", want: apperr.ErrInvalidAccessToken},
		{name: "refresh token", authz: "Bearer " + refresh, want: apperr.ErrInvalidAccessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, called, err := run(t, g, "/profile/1", tt.authz)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, called)
		})
	}
}

func TestGate_ExpiredAccessToken(t *testing.T) {
	g, codec := newGate()
	issuedAt := time.Now()
	codec.Now = func() time.Time { return issuedAt }

	access, err := codec.IssueAccess(tokens.Identity{Username: "alice01", ID: 1})
	require.NoError(t, err)

	_, called, err := run(t, g, "/profile/1", "Bearer "+access)
	require.NoError(t, err)
	require.True(t, called)

	codec.Now = func() time.Time { return issuedAt.Add(codec.AccessTTL + time.Second) }

	_, called, err = run(t, g, "/profile/1", "Bearer "+access)
	assert.ErrorIs(t, err, apperr.ErrInvalidAccessToken)
	assert.False(t, called)
}

func TestGate_ValidTokenSetsIdentity(t *testing.T) {
	g, codec := newGate()
	want := tokens.Identity{Username: "alice01", ID: 7}
	access, err := codec.IssueAccess(want)
	require.NoError(t, err)

	c, called, err := run(t, g, "/profile/7", "Bearer "+access)
	require.NoError(t, err)
	require.True(t, called)

	got, ok := IdentityFrom(c)
	require.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = IdentityFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, want, got)
}
