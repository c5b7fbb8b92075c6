package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	records, err := h.history.List(c.UserContext(), currentUserID(c), c.Query("verdict", "all"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"records": records})
}

func (h *Handler) HandleDeleteHistory(c *fiber.Ctx) error {
	if err := h.history.Delete(c.UserContext(), currentUserID(c), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) HandleComparison(c *fiber.Ctx) error {
	report, err := h.history.Comparison(c.UserContext(), currentUserID(c), c.Params("id"), c.Query("sort"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id := c.Params("id")
	body, contentType, err := h.history.Export(c.UserContext(), currentUserID(c), id, c.Query("format"))
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="analysis-%s"`, id))
	return c.Status(fiber.StatusOK).Send(body)
}
