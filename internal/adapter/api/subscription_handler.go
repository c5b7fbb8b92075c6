package api

import "github.com/gofiber/fiber/v2"

func (h *Handler) HandleSubscription(c *fiber.Ctx) error {
	sub, err := h.subscriptions.Status(c.UserContext(), currentUserID(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}

func (h *Handler) HandleUpgrade(c *fiber.Ctx) error {
	sub, err := h.subscriptions.Upgrade(c.UserContext(), currentUserID(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}

func (h *Handler) HandleCancel(c *fiber.Ctx) error {
	sub, err := h.subscriptions.Cancel(c.UserContext(), currentUserID(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}
