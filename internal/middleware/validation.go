package middleware

import (
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	PageKey = "validated_page"
	IDKey   = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidatePage parses the optional page query parameter (default 1)
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := validation.ParsePage(c.Query("page"))
		if err != nil {
			return err
		}
		c.Locals(PageKey, page)
		return c.Next()
	}
}

// ValidateID parses the :id path parameter
func (vm *ValidationMiddleware) ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := validation.ParseID(c.Params("id"))
		if err != nil {
			return err
		}
		c.Locals(IDKey, id)
		return c.Next()
	}
}

// Page returns the page stored by ValidatePage, or 1 when the middleware did not run
func Page(c *fiber.Ctx) int {
	if page, ok := c.Locals(PageKey).(int); ok {
		return page
	}
	return 1
}

// ID returns the id stored by ValidateID
func ID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(IDKey).(int64)
	return id
}
