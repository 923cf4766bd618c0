package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is the only error type that leaves the service layer with a
// client-visible meaning. Callers branch on Code, never on Message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrInvalidBody             = &Error{Kind: KindValidation, Code: "invalid_body", Message: "Invalid request body"}
	ErrInvalidID               = &Error{Kind: KindValidation, Code: "invalid_id", Message: "Id must be a positive integer"}
	ErrBadAuthHeader           = &Error{Kind: KindAuthentication, Code: "bad_authorization_header", Message: "Bad authorization header"}
	ErrInvalidAccessToken      = &Error{Kind: KindAuthentication, Code: "invalid_access_token", Message: "Error: access_token is not valid"}
	ErrUserAlreadyExists       = &Error{Kind: KindConflict, Code: "user_already_exists", Message: "User already exists"}
	ErrInvalidCredentials      = &Error{Kind: KindAuthentication, Code: "invalid_credentials", Message: "Invalid credentials"}
	ErrRefreshTokenNotProvided = &Error{Kind: KindAuthentication, Code: "refresh_token_not_provided", Message: "Refresh token not provided"}
	ErrInvalidRefreshToken     = &Error{Kind: KindAuthentication, Code: "invalid_refresh_token", Message: "Invalid refresh token"}
	ErrUserNotFound            = &Error{Kind: KindNotFound, Code: "user_not_found", Message: "User not found"}
	ErrDogNotFound             = &Error{Kind: KindNotFound, Code: "dog_not_found", Message: "Dog not found"}
	ErrAccessDenied            = &Error{Kind: KindAuthorization, Code: "access_denied", Message: "Access denied"}
)

func Validation(fields []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_failed",
		Message: "Validation failed",
		Fields:  fields,
	}
}

// Status maps a kind to its HTTP status. Conflict stays 401: existing
// clients treat a duplicate username as an authentication failure.
func Status(k Kind) int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication, KindConflict:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
