package api

import (
	"errors"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	userHeader = "X-User-ID"
	userLocal  = "user"
)

// RequireUser resolves the caller from the X-User-ID header.
func RequireUser(accounts *usecase.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := accounts.Authenticate(c.UserContext(), c.Get(userHeader))
		if err != nil {
			status := fiber.StatusInternalServerError
			msg := entity.ErrInternalServer.Error()
			if errors.Is(err, entity.ErrUnauthenticated) {
				status, msg = fiber.StatusUnauthorized, err.Error()
			}
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// Throttle rejects requests once the shared token bucket is empty.
func Throttle(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many analysis requests, slow down"})
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(userLocal).(*entity.User)
	return u
}

func currentUserID(c *fiber.Ctx) string {
	if u := currentUser(c); u != nil {
		return u.ID
	}
	return ""
}
