package handler

import (
	"tindev/internal/delivery/http/dto"
	"tindev/internal/delivery/http/middleware"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/response"
	"tindev/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobRecruitmentHandler serves posting management for companies plus the
// developer's side of the swipe deck (developers browse and rate postings).
type JobRecruitmentHandler struct {
	jobs         usecase.JobRecruitmentUsecase
	discovery    usecase.DiscoveryUsecase
	interactions usecase.MatchingUsecase
}

func NewJobRecruitmentHandler(jobs usecase.JobRecruitmentUsecase, discovery usecase.DiscoveryUsecase, interactions usecase.MatchingUsecase) *JobRecruitmentHandler {
	return &JobRecruitmentHandler{jobs: jobs, discovery: discovery, interactions: interactions}
}

func (h *JobRecruitmentHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id", h.Get)
}

func (h *JobRecruitmentHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/random", h.Random, middleware.RequireRole(user.RoleDeveloper))
	r.Post("/like/:id", h.Like, middleware.RequireRole(user.RoleDeveloper))
	r.Post("/dislike/:id", h.Dislike, middleware.RequireRole(user.RoleDeveloper))

	r.Get("/", h.ListMine, middleware.RequireRole(user.RoleCompany))
	r.Post("/", h.Create, middleware.RequireRole(user.RoleCompany))
	r.Put("/:id", h.Update, middleware.RequireRole(user.RoleCompany))
	r.Delete("/:id", h.Delete, middleware.RequireRole(user.RoleCompany))
}

func (h *JobRecruitmentHandler) ListMine(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	out, err := h.jobs.ListMine(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobRecruitmentHandler) Create(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.JobRecruitmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.jobs.Create(c.Context(), userID, req.ToDomain())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Created", created)
}

func (h *JobRecruitmentHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobRecruitmentHandler) Update(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRecruitmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.jobs.Update(c.Context(), userID, id, req.ToDomain())
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *JobRecruitmentHandler) Delete(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobs.Delete(c.Context(), userID, id); err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Deleted", nil)
}

func (h *JobRecruitmentHandler) Random(c fiber.Ctx) error {
	userID, _, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	out, err := h.discovery.SampleJobRecruitments(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobRecruitmentHandler) Like(c fiber.Ctx) error {
	return h.decide(c, true)
}

func (h *JobRecruitmentHandler) Dislike(c fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *JobRecruitmentHandler) decide(c fiber.Ctx, liked bool) error {
	userID, role, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	outcome, err := h.interactions.RecordDecision(c.Context(), role, userID, usecase.TargetJobRecruitment, targetID, liked)
	if err != nil {
		return mapDecisionError(err)
	}
	return response.Success(c, fiber.StatusOK, outcome.String(), dto.DecisionResponse{Result: outcome.String()})
}
