package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/logging"
	"github.com/Skotchmaster/doggee/internal/service"
	"github.com/Skotchmaster/doggee/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.Svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *UserHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update_profile")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.AuthorizeOwner(ctx, actor, id); err != nil {
		return err
	}

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_error", "status", 400, "error", err)
		return apperr.ErrInvalidBody
	}

	p, err := h.Svc.UpdateProfile(ctx, actor, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ProfileResponse{
		Message: "Profile updated successfully",
		Profile: p,
	})
}
