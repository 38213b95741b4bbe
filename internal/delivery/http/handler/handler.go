// Package handler contains the Fiber endpoints. Handlers parse and validate
// transport concerns, call one usecase, and translate sentinel errors into
// AppErrors.
package handler

import (
	"errors"

	"tindev/internal/delivery/http/middleware"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/response"
	"tindev/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func callerFromCtx(c fiber.Ctx) (uuid.UUID, user.Role, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, ok := c.Locals(middleware.CtxRoleKey).(user.Role)
	if !ok {
		return uuid.Nil, "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, role, nil
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

// mapCommonUsecaseError covers the sentinels every surface shares.
func mapCommonUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRoleDenied):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNotOwner):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrTargetNotFound),
		errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrNoCandidateFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrPhoneTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Phone number already in use", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
