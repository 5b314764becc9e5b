package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question and category HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Returns every category keyed by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *QuestionHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions ordered by id, with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Inserts a question and returns the requested page of all questions
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param request body dto.CreateQuestionRequest true "New question"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("Unprocessable resource", err)
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return err
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req, middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	resp, err := h.service.DeleteQuestion(c.UserContext(), middleware.ID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("Bad request")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return domain.NewBadRequestError("searchTerm is required")
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), &req, middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions in a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *QuestionHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestionsByCategory(c.UserContext(), middleware.ID(c), middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
