// Package handler translates HTTP requests into usecase calls.
package handler

import (
	"loyalty/internal/delivery/api/middleware"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// cardAccess resolves the :id card of a route and checks the caller may act on it.
// Staff and admins reach every card, guests only their own.
type cardAccess struct {
	cardUC usecase.CardUsecase
}

func (a cardAccess) load(c echo.Context) (*entity.GuestCard, error) {
	cardID, err := uuidParam(c, "id")
	if err != nil {
		return nil, err
	}

	card, err := a.cardUC.GetCard(c.Request().Context(), cardID)
	if err != nil {
		return nil, err
	}

	if middleware.HasRole(c, entity.RoleStaff) || middleware.HasRole(c, entity.RoleAdmin) {
		return card, nil
	}

	// Other guests' cards look absent.
	if actorID, ok := middleware.GetActorID(c); !ok || actorID != card.UserID {
		return nil, domainerrors.ErrCardNotFound
	}

	return card, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the request body and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// actorID returns the authenticated actor or ErrUnauthorized.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetActorID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func optionalActorID(c echo.Context) *uuid.UUID {
	id, ok := middleware.GetActorID(c)
	if !ok {
		return nil
	}

	return &id
}
