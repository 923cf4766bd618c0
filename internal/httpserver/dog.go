package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/logging"
	"github.com/Skotchmaster/doggee/internal/service"
	"github.com/Skotchmaster/doggee/internal/transport"
)

type DogHTTP struct {
	Svc *service.DogService
}

func (h *DogHTTP) ListDogs(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	dogs, err := h.Svc.ListDogs(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dogs)
}

func (h *DogHTTP) CreateDog(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_dog")

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

	var req transport.CreateDogRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_dog_error", "status", 400, "error", err)
		return apperr.ErrInvalidBody
	}

	dog, err := h.Svc.CreateDog(ctx, actor, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, transport.DogResponse{Message: "Dog created successfully", Dog: dog})
}

func (h *DogHTTP) UpdateDog(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update_dog")

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dogID, err := pathID(c, "dogId")
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if _, err := h.Svc.Owned(ctx, actor, userID, dogID); err != nil {
		return err
	}

	var req transport.UpdateDogRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_dog_error", "status", 400, "error", err)
		return apperr.ErrInvalidBody
	}

	dog, err := h.Svc.UpdateDog(ctx, actor, userID, dogID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.DogResponse{Message: "Dog updated successfully", Dog: dog})
}

func (h *DogHTTP) DeleteDog(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dogID, err := pathID(c, "dogId")
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteDog(c.Request().Context(), actor, userID, dogID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Dog deleted successfully"})
}

func Breeds(c echo.Context) error {
	return c.JSON(http.StatusOK, service.Breeds())
}
