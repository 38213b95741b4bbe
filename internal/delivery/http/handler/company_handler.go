package handler

import (
	"tindev/internal/delivery/http/dto"
	"tindev/internal/delivery/http/middleware"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/response"
	"tindev/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	companies usecase.CompanyUsecase
}

func NewCompanyHandler(companies usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/user/:id", h.GetByUserID)
}

func (h *CompanyHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/my-info", h.MyInfo, middleware.RequireRole(user.RoleCompany))
	r.Put("/my-info", h.UpdateMyInfo, middleware.RequireRole(user.RoleCompany))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	out, err := h.companies.List(c.Context())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CompanyHandler) GetByUserID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	comp, err := h.companies.GetByUserID(c.Context(), id)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, comp)
}

func (h *CompanyHandler) MyInfo(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	comp, err := h.companies.MyInfo(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, comp)
}

func (h *CompanyHandler) UpdateMyInfo(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CompanyProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	comp, err := h.companies.UpdateMyInfo(c.Context(), userID, req.ToDomain())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, comp)
}
