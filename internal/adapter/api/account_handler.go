package api

import (
	"veritas-core/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) HandleSignUp(c *fiber.Ctx) error {
	var req entity.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := h.accounts.SignUp(c.UserContext(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(userHeader, user.ID)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Handler) HandleSignIn(c *fiber.Ctx) error {
	var req entity.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := h.accounts.SignIn(c.UserContext(), req)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(userHeader, user.ID)
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *Handler) HandleSignOut(c *fiber.Ctx) error {
	if err := h.accounts.SignOut(c.UserContext(), currentUserID(c)); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) HandleMe(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(currentUser(c))
}
