package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/logging"
)

type ErrorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// ErrorHandler renders every error returned by a handler or middleware in one
// shape. Anything that is not an apperr.Error or an echo.HTTPError is a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := render(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "status", status, "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(status)
	} else {
		werr = c.JSON(status, body)
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}

func render(err error) (int, ErrorBody) {
	if e, ok := apperr.As(err); ok {
		return apperr.Status(e.Kind), ErrorBody{Code: e.Code, Message: e.Message, Errors: e.Fields}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			if e, ok := apperr.As(he.Internal); ok {
				return apperr.Status(e.Kind), ErrorBody{Code: e.Code, Message: e.Message, Errors: e.Fields}
			}
		}
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		} else if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
		return he.Code, ErrorBody{Code: httpCode(he.Code), Message: msg}
	}

	return http.StatusInternalServerError, ErrorBody{Code: "internal_error", Message: "Internal server error"}
}

func httpCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusTooManyRequests:
		return "too_many_requests"
	case http.StatusRequestEntityTooLarge:
		return "body_too_large"
	case http.StatusUnsupportedMediaType:
		return "unsupported_media_type"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	}
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return "http_" + strconv.Itoa(status)
}
