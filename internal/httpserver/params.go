package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/doggee/internal/apperr"
	authmw "github.com/Skotchmaster/doggee/internal/middleware/auth"
)

func pathID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		return 0, apperr.ErrInvalidID
	}
	return uint(v), nil
}

func actorID(c echo.Context) (uint, error) {
	id, ok := authmw.IdentityFrom(c)
	if !ok {
		return 0, apperr.ErrInvalidAccessToken
	}
	return id.ID, nil
}
