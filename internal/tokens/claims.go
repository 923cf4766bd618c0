package tokens

import "github.com/golang-jwt/jwt/v5"

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Identity struct {
	Username string
	ID       uint
}

type Claims struct {
	Username string `json:"username"`
	UserID   uint   `json:"id"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{Username: c.Username, ID: c.UserID}
}

type Reason string

const (
	ReasonMalformed    Reason = "malformed"
	ReasonBadSignature Reason = "bad_signature"
	ReasonExpired      Reason = "expired"
	ReasonWrongType    Reason = "wrong_type"
)

// Verification holds either decoded claims or the reason they were rejected.
type Verification struct {
	Claims *Claims
	Reason Reason
}

func (v Verification) Valid() bool {
	return v.Claims != nil
}

func valid(c *Claims) Verification {
	return Verification{Claims: c}
}

func invalid(r Reason) Verification {
	return Verification{Reason: r}
}
