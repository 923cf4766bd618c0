package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Skotchmaster/doggee/internal/apperr"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "app error", err: apperr.ErrDogNotFound, status: http.StatusNotFound, code: "dog_not_found"},
		{name: "wrapped app error", err: fmt.Errorf("x: %w", apperr.ErrAccessDenied), status: http.StatusForbidden, code: "access_denied"},
		{name: "conflict", err: apperr.ErrUserAlreadyExists, status: http.StatusUnauthorized, code: "user_already_exists"},
		{name: "echo not found", err: echo.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{name: "echo rate limit", err: echo.ErrTooManyRequests, status: http.StatusTooManyRequests, code: "too_many_requests"},
		{name: "plain error", err: errors.New("db is down"), status: http.StatusInternalServerError, code: "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := render(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestErrorHandler_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(errors.New("pq: password authentication failed"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"Internal server error"}`, rec.Body.String())
}

func TestErrorHandler_ValidationFields(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	ErrorHandler(apperr.Validation([]apperr.FieldError{{Field: "name", Code: "required", Message: "Name is required"}}), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","errors":[{"field":"name","code":"required","message":"Name is required"}]}`, rec.Body.String())
}
