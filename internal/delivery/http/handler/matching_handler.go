package handler

import (
	"tindev/internal/pkg/response"
	"tindev/internal/repository"
	"tindev/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// MatchingHandler serves the aggregation views over matching rows.
type MatchingHandler struct {
	lists usecase.MatchingListUsecase
}

func NewMatchingHandler(lists usecase.MatchingListUsecase) *MatchingHandler {
	return &MatchingHandler{lists: lists}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Mutual)
	r.Get("/liked", h.ReceivedLikes)
	r.Get("/disliked", h.MyDislikes)
}

func (h *MatchingHandler) Mutual(c fiber.Ctx) error {
	return h.list(c, repository.ViewMutual)
}

func (h *MatchingHandler) ReceivedLikes(c fiber.Ctx) error {
	return h.list(c, repository.ViewReceivedLikes)
}

func (h *MatchingHandler) MyDislikes(c fiber.Ctx) error {
	return h.list(c, repository.ViewMyDislikes)
}

func (h *MatchingHandler) list(c fiber.Ctx, view repository.MatchView) error {
	userID, role, err := callerFromCtx(c)
	if err != nil {
		return err
	}
	entries, err := h.lists.List(c.Context(), role, userID, view)
	if err != nil {
		return mapCommonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}
