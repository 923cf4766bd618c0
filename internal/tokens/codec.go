package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Codec signs access and refresh tokens with two unrelated secrets.
// A token of one kind never verifies as the other: the key differs and
// the typ claim is checked as well.
type Codec struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Now           func() time.Time
}

func NewCodec(accessSecret, refreshSecret []byte) *Codec {
	return &Codec{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessTTL:     DefaultAccessTTL,
		RefreshTTL:    DefaultRefreshTTL,
		Now:           time.Now,
	}
}

func (c *Codec) IssueAccess(id Identity) (string, error) {
	return c.issue(id, TypeAccess, c.AccessSecret, c.AccessTTL)
}

func (c *Codec) IssueRefresh(id Identity) (string, error) {
	return c.issue(id, TypeRefresh, c.RefreshSecret, c.RefreshTTL)
}

func (c *Codec) VerifyAccess(token string) Verification {
	return c.verify(token, TypeAccess, c.AccessSecret)
}

func (c *Codec) VerifyRefresh(token string) Verification {
	return c.verify(token, TypeRefresh, c.RefreshSecret)
}

func (c *Codec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Codec) issue(id Identity, typ string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("tokens: empty signing secret")
	}
	now := c.now()
	claims := Claims{
		Username: id.Username,
		UserID:   id.ID,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (c *Codec) verify(raw string, typ string, secret []byte) Verification {
	if raw == "" || len(secret) == 0 {
		return invalid(ReasonMalformed)
	}

	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return invalid(reasonFor(err))
	}
	if !tkn.Valid {
		return invalid(ReasonMalformed)
	}
	if claims.Type != typ {
		return invalid(ReasonWrongType)
	}
	return valid(&claims)
}

func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ReasonBadSignature
	default:
		return ReasonMalformed
	}
}
