package authmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/logging"
	"github.com/Skotchmaster/doggee/internal/tokens"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

type identityKey struct{}

// Gate requires a valid access token on every route except the public ones.
// Public paths are compared against the request path without the query.
type Gate struct {
	Codec    *tokens.Codec
	Public   map[string]struct{}
	Prefixes []string
}

func NewGate(codec *tokens.Codec) *Gate {
	return &Gate{
		Codec: codec,
		Public: map[string]struct{}{
			"/auth/register":      {},
			"/auth/login":         {},
			"/auth/refresh-token": {},
			"/api-docs":           {},
		},
		Prefixes: []string{"/api-docs/", "/health/"},
	}
}

func (g *Gate) IsPublic(path string) bool {
	if _, ok := g.Public[path]; ok {
		return true
	}
	for _, p := range g.Prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodOptions || g.IsPublic(req.URL.Path) {
				return next(c)
			}

			l := logging.FromContext(req.Context())

			raw, ok := bearer(req.Header.Get(echo.HeaderAuthorization))
			if !ok {
				l.Warn("auth_failed", "status", 401, "reason", "missing or malformed authorization header")
				return apperr.ErrBadAuthHeader
			}

			v := g.Codec.VerifyAccess(raw)
			if !v.Valid() {
				l.Warn("auth_failed", "status", 401, "reason", string(v.Reason))
				return apperr.ErrInvalidAccessToken
			}

			id := v.Claims.Identity()
			c.Set(ctxUserID, id.ID)
			c.Set(ctxUsername, id.Username)

			ctx := context.WithValue(req.Context(), identityKey{}, id)
			ctx = logging.IntoContext(ctx, l.With("auth_user_id", id.ID))
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

func IdentityFrom(c echo.Context) (tokens.Identity, bool) {
	id, ok := c.Get(ctxUserID).(uint)
	if !ok {
		return tokens.Identity{}, false
	}
	name, _ := c.Get(ctxUsername).(string)
	return tokens.Identity{Username: name, ID: id}, true
}

func IdentityFromContext(ctx context.Context) (tokens.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(tokens.Identity)
	return id, ok
}
