package handler

import (
	"errors"

	"tindev/internal/delivery/http/dto"
	"tindev/internal/delivery/http/middleware"
	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/response"
	"tindev/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// DeveloperHandler serves the developer profile surface plus the company's
// side of the swipe deck (companies browse and rate developers).
type DeveloperHandler struct {
	developers   usecase.DeveloperUsecase
	discovery    usecase.DiscoveryUsecase
	interactions usecase.MatchingUsecase
}

func NewDeveloperHandler(developers usecase.DeveloperUsecase, discovery usecase.DiscoveryUsecase, interactions usecase.MatchingUsecase) *DeveloperHandler {
	return &DeveloperHandler{developers: developers, discovery: discovery, interactions: interactions}
}

func (h *DeveloperHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/user/:id", h.GetByUserID)
}

func (h *DeveloperHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/my-info", h.MyInfo, middleware.RequireRole(user.RoleDeveloper))
	r.Put("/my-info", h.UpdateMyInfo, middleware.RequireRole(user.RoleDeveloper))
	r.Get("/random", h.Random, middleware.RequireRole(user.RoleCompany))
	r.Post("/like/:id", h.Like, middleware.RequireRole(user.RoleCompany))
	r.Post("/dislike/:id", h.Dislike, middleware.RequireRole(user.RoleCompany))
}

func (h *DeveloperHandler) List(c fiber.Ctx) error {
	devs, err := h.developers.List(c.Context())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, devs)
}

func (h *DeveloperHandler) GetByUserID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	dev, err := h.developers.GetByUserID(c.Context(), id)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dev)
}

func (h *DeveloperHandler) MyInfo(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	dev, err := h.developers.MyInfo(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dev)
}

func (h *DeveloperHandler) UpdateMyInfo(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.DeveloperProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dev, err := h.developers.UpdateMyInfo(c.Context(), userID, req.ToDomain())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dev)
}

func (h *DeveloperHandler) Random(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	devs, err := h.discovery.SampleDevelopers(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, devs)
}

func (h *DeveloperHandler) Like(c fiber.Ctx) error {
	return h.decide(c, true)
}

func (h *DeveloperHandler) Dislike(c fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *DeveloperHandler) decide(c fiber.Ctx, liked bool) error {
	userID, role, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	outcome, err := h.interactions.RecordDecision(c.Context(), role, userID, usecase.TargetDeveloper, targetID, liked)
	if err != nil {
		return mapDecisionError(err)
	}
	return response.Success(c, fiber.StatusOK, outcome.String(), dto.DecisionResponse{Result: outcome.String()})
}

func mapDecisionError(err error) error {
	if errors.Is(err, matching.ErrAlreadyInteracted) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Already interacted", nil, err)
	}
	return mapCommonUsecaseError(err)
}
