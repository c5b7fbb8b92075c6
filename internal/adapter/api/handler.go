package api

import (
	"veritas-core/internal/domain/entity"
	"veritas-core/internal/logging"
	"veritas-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	orchestrator  *usecase.Orchestrator
	accounts      *usecase.AccountService
	subscriptions *usecase.SubscriptionService
	history       *usecase.HistoryService
	log           logging.Logger
}

func NewHandler(orch *usecase.Orchestrator, accounts *usecase.AccountService, subs *usecase.SubscriptionService, history *usecase.HistoryService, log logging.Logger) *Handler {
	return &Handler{
		orchestrator:  orch,
		accounts:      accounts,
		subscriptions: subs,
		history:       history,
		log:           log,
	}
}

func (h *Handler) HandleEngines(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"engines": h.orchestrator.Catalog()})
}

func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	var req entity.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := h.orchestrator.Execute(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *Handler) HandleCurrent(c *fiber.Ctx) error {
	state, err := h.orchestrator.State(c.UserContext(), currentUserID(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(state)
}

func (h *Handler) HandleClear(c *fiber.Ctx) error {
	if err := h.orchestrator.Clear(c.UserContext(), currentUserID(c)); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) HandleClearError(c *fiber.Ctx) error {
	if err := h.orchestrator.ClearError(c.UserContext(), currentUserID(c)); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
