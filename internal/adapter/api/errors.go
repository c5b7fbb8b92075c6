package api

import (
	"errors"

	"veritas-core/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps business errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, entity.ErrDailyLimitReached):
		return fiber.StatusTooManyRequests
	case errors.Is(err, entity.ErrPremiumEngine), errors.Is(err, entity.ErrPremiumFeature):
		return fiber.StatusForbidden
	case errors.Is(err, entity.ErrResourceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrAlreadyPremium):
		return fiber.StatusConflict
	case errors.Is(err, entity.ErrEmptyText),
		errors.Is(err, entity.ErrTextTooLong),
		errors.Is(err, entity.ErrNoEnginesSelected),
		errors.Is(err, entity.ErrUnknownEngine),
		errors.Is(err, entity.ErrEngineLimit),
		errors.Is(err, entity.ErrUnsupportedFormat),
		errors.Is(err, entity.ErrInvalidRequest):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		h.log.Error("request failed", "path", c.Path(), "error", err)
		msg = entity.ErrInternalServer.Error()
		if errors.Is(err, entity.ErrAnalysisFailed) {
			msg = entity.AnalysisFailedMessage
		}
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
