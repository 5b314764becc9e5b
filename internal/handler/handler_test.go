package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuestionService
type MockQuestionService struct {
	GetCategoriesFunc          func(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestionsFunc          func(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	SearchQuestionsFunc        func(ctx context.Context, req *dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error)
	GetQuestionsByCategoryFunc func(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	CreateQuestionFunc         func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	DeleteQuestionFunc         func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

func (m *MockQuestionService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockQuestionService.GetCategoriesFunc not implemented")
}
func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) SearchQuestions(ctx context.Context, req *dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, req, page)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}
func (m *MockQuestionService) GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	if m.GetQuestionsByCategoryFunc != nil {
		return m.GetQuestionsByCategoryFunc(ctx, categoryID, page)
	}
	panic("MockQuestionService.GetQuestionsByCategoryFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req, page)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, req)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

// MockHealthChecker
type MockHealthChecker struct {
	err error
}

func (m *MockHealthChecker) PingContext(ctx context.Context) error { return m.err }

func setupApp(qs *MockQuestionService, quiz *MockQuizService, health *MockHealthChecker) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	vm := middleware.NewValidationMiddleware()

	qh := handler.NewQuestionHandler(qs)
	app.Get("/categories", qh.GetCategories)
	app.Get("/categories/:id/questions", vm.ValidateID(), vm.ValidatePage(), qh.GetQuestionsByCategory)
	app.Get("/questions", vm.ValidatePage(), qh.ListQuestions)
	app.Post("/questions", vm.ValidatePage(), qh.CreateQuestion)
	app.Delete("/questions/:id", vm.ValidateID(), qh.DeleteQuestion)
	app.Post("/search", vm.ValidatePage(), qh.SearchQuestions)

	app.Post("/quizzes", handler.NewQuizHandler(quiz).NextQuestion)
	app.Get("/healthz", handler.NewHealthHandler(health).Health)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestGetCategories(t *testing.T) {
	qs := &MockQuestionService{
		GetCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
			return &dto.CategoriesResponse{Success: true, Categories: map[int64]string{1: "Science", 2: "Art"}}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art"}, body["categories"])
}

func TestGetCategories_Error(t *testing.T) {
	qs := &MockQuestionService{
		GetCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
			return nil, domain.NewInternalError("Failed to get categories", errors.New("db down"))
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(500), body["error"])
}

func TestListQuestions_PassesPage(t *testing.T) {
	var gotPage int
	qs := &MockQuestionService{
		ListQuestionsFunc: func(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
			gotPage = page
			return &dto.QuestionListResponse{
				Success:        true,
				Questions:      []dto.QuestionResponse{{ID: 21, Question: "Q", Answer: "A", Category: 1, Difficulty: 1}},
				TotalQuestions: 21,
				Categories:     map[int64]string{1: "Science"},
			}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodGet, "/questions?page=3", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, gotPage)
	assert.Equal(t, float64(21), body["total_questions"])
	assert.Contains(t, body, "current_category")
	assert.Nil(t, body["current_category"])

	resp, body = doJSON(t, app, http.MethodGet, "/questions?page=zero", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, float64(400), body["error"])
}

func TestCreateQuestion(t *testing.T) {
	var got *dto.CreateQuestionRequest
	qs := &MockQuestionService{
		CreateQuestionFunc: func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
			got = req
			return &dto.CreateQuestionResponse{Success: true, Created: 24, Questions: []dto.QuestionResponse{}, TotalQuestions: 24}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodPost, "/questions",
		`{"question":"Who invented Peanut Butter?","answer":"George Washington Carver","category":"4","difficulty":2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(24), body["created"])
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.Category.Int64())
}

func TestCreateQuestion_Unprocessable(t *testing.T) {
	app := setupApp(&MockQuestionService{}, &MockQuizService{}, &MockHealthChecker{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing answer", body: `{"question":"Q","category":1,"difficulty":1}`},
		{name: "null difficulty", body: `{"question":"Q","answer":"A","category":1,"difficulty":null}`},
		{name: "bad category", body: `{"question":"Q","answer":"A","category":"science","difficulty":1}`},
		{name: "malformed json", body: `{"question":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/questions", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, float64(422), body["error"])
		})
	}
}

func TestDeleteQuestion(t *testing.T) {
	qs := &MockQuestionService{
		DeleteQuestionFunc: func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
			if id == 1000 {
				return nil, domain.NewQuestionNotFoundError(id)
			}
			return &dto.DeleteQuestionResponse{Success: true, QuestionsID: id}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodDelete, "/questions/5", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), body["questions_id"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/questions/1000", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/questions/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchQuestions(t *testing.T) {
	qs := &MockQuestionService{
		SearchQuestionsFunc: func(ctx context.Context, req *dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error) {
			if req.SearchTerm == "applejacks" {
				return nil, domain.NewNotFoundError("No questions match the search term")
			}
			return &dto.SearchQuestionsResponse{
				Success:        true,
				Questions:      []dto.QuestionResponse{{ID: 6, Question: "What was the title?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3}},
				TotalQuestions: 1,
			}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodPost, "/search", `{"searchTerm":"title"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_questions"])

	resp, _ = doJSON(t, app, http.MethodPost, "/search", `{"searchTerm":"applejacks"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/search", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/search", `{"searchTerm":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetQuestionsByCategory(t *testing.T) {
	science := "Science"
	qs := &MockQuestionService{
		GetQuestionsByCategoryFunc: func(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
			if categoryID != 1 {
				return nil, domain.NewCategoryNotFoundError(categoryID)
			}
			return &dto.CategoryQuestionsResponse{
				Success:         true,
				Questions:       []dto.QuestionResponse{{ID: 20, Question: "Q", Answer: "A", Category: 1, Difficulty: 4}},
				TotalQuestions:  1,
				CurrentCategory: &science,
			}, nil
		},
	}
	app := setupApp(qs, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodGet, "/categories/1/questions", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Science", body["current_category"])

	resp, _ = doJSON(t, app, http.MethodGet, "/categories/1000/questions", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNextQuestion(t *testing.T) {
	var got *dto.QuizRequest
	quiz := &MockQuizService{
		NextQuestionFunc: func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
			got = req
			return &dto.QuizResponse{Success: true, Question: &dto.QuestionResponse{ID: 6, Question: "Q", Answer: "A", Category: 1, Difficulty: 3}}, nil
		},
	}
	app := setupApp(&MockQuestionService{}, quiz, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodPost, "/quizzes", `{"previous_questions":[5],"quiz_category":{"type":"Science","id":"1"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	question, ok := body["question"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(6), question["id"])
	require.NotNil(t, got)
	assert.Equal(t, []int64{5}, got.PreviousIDs())
	assert.Equal(t, int64(1), got.QuizCategory.ID.Int64())
}

func TestNextQuestion_Exhausted(t *testing.T) {
	quiz := &MockQuizService{
		NextQuestionFunc: func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
			return &dto.QuizResponse{Success: true}, nil
		},
	}
	app := setupApp(&MockQuestionService{}, quiz, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodPost, "/quizzes", `{"previous_questions":[5,6],"quiz_category":{"id":1}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "question")
	assert.Nil(t, body["question"])
}

func TestNextQuestion_MissingCategory(t *testing.T) {
	app := setupApp(&MockQuestionService{}, &MockQuizService{}, &MockHealthChecker{})

	resp, body := doJSON(t, app, http.MethodPost, "/quizzes", `{"previous_questions":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, float64(422), body["error"])

	resp, _ = doJSON(t, app, http.MethodPost, "/quizzes", `not json`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := setupApp(&MockQuestionService{}, &MockQuizService{}, &MockHealthChecker{})
	resp, body := doJSON(t, app, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	down := setupApp(&MockQuestionService{}, &MockQuizService{}, &MockHealthChecker{err: errors.New("refused")})
	resp, body = doJSON(t, down, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
