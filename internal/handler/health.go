package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports store reachability
type HealthHandler struct {
	checker domain.HealthChecker
}

func NewHealthHandler(checker domain.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.checker.PingContext(ctx); err != nil {
		return domain.NewError(domain.ErrServiceUnavailable, "database unreachable", err)
	}
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
