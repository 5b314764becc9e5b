package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
)

// FlexibleID is an integer id that accepts a JSON number or a numeric string.
// The web client sends category ids from <select> values as strings.
type FlexibleID int64

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = FlexibleID(v)
	return nil
}

// Int64 returns the id as int64
func (id FlexibleID) Int64() int64 {
	return int64(id)
}

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse maps category id to category type
// @Description All categories keyed by id
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse is a page of all questions
// @Description Paginated question list
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory *string            `json:"current_category"`
}

// SearchRequest represents the body of POST /search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

// SearchQuestionsResponse is a page of questions matching a search term
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CategoryQuestionsResponse is a page of questions in one category
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CreateQuestionRequest represents the body of POST /questions
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string     `json:"question" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Category   FlexibleID `json:"category" validate:"required,min=1" swaggertype:"integer"`
	Difficulty FlexibleID `json:"difficulty" validate:"required,min=1" swaggertype:"integer"`
}

// ToDomain converts the request into an unsaved domain.Question
func (r *CreateQuestionRequest) ToDomain() *domain.Question {
	return domain.NewQuestion(r.Question, r.Answer, r.Category.Int64(), int(r.Difficulty))
}

// CreateQuestionResponse returns the new id and the requested page after insert
type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        int64              `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// DeleteQuestionResponse confirms a deletion
type DeleteQuestionResponse struct {
	Success     bool  `json:"success"`
	QuestionsID int64 `json:"questions_id"`
}

// QuizCategory is the category a quiz is played in. ID 0 means all categories.
type QuizCategory struct {
	ID   FlexibleID `json:"id" validate:"min=0" swaggertype:"integer"`
	Type string     `json:"type"`
}

// QuizRequest represents the body of POST /quizzes
// @Description Request body for the next quiz question
type QuizRequest struct {
	PreviousQuestions []FlexibleID  `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// PreviousIDs returns previous_questions as int64 ids
func (r *QuizRequest) PreviousIDs() []int64 {
	ids := make([]int64, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		ids = append(ids, id.Int64())
	}
	return ids
}

// QuizResponse carries the next question, or null when the quiz is exhausted
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// ToQuestionResponse maps a domain question to its JSON shape
func ToQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// ToQuestionResponses never returns nil so that empty pages encode as [].
func ToQuestionResponses(qs []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, ToQuestionResponse(q))
	}
	return out
}
