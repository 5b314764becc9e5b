package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := resolveError(err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		}
		if rid, ok := c.Locals(RequestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		if status >= http.StatusInternalServerError {
			logger.Get().Error("Request failed", fields...)
		} else {
			logger.Get().Warn("Request rejected", fields...)
		}

		return c.Status(status).JSON(ErrorResponse{
			Success: false,
			Error:   status,
			Message: message,
		})
	}
}

// StatusCode returns the HTTP status ErrorHandler will use for err
func StatusCode(err error) int {
	status, _ := resolveError(err)
	return status
}

func resolveError(err error) (int, string) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return mapDomainErrorToHTTPStatus(domainErr), domainErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return fiberErr.Code, "Resource not found"
		case fiber.StatusMethodNotAllowed:
			return fiberErr.Code, "Method not allowed"
		case fiber.StatusUnprocessableEntity:
			return fiberErr.Code, "Unprocessable resource"
		}
		return fiberErr.Code, fiberErr.Message
	}

	return http.StatusInternalServerError, "Internal server error"
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrBadRequest:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case domain.ErrServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
