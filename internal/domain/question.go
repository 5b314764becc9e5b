package domain

import "strings"

// Question is a trivia question. ID is assigned by the store on insert.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion creates a Question that has not been persisted yet.
func NewQuestion(question, answer string, categoryID int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// Validate validates the question before insert
func (q *Question) Validate() error {
	var missing []string
	if strings.TrimSpace(q.Question) == "" {
		missing = append(missing, "question")
	}
	if strings.TrimSpace(q.Answer) == "" {
		missing = append(missing, "answer")
	}
	if q.CategoryID <= 0 {
		missing = append(missing, "category")
	}
	if q.Difficulty <= 0 {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return NewUnprocessableError("missing or invalid fields: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

// Category groups questions. Categories are read-only here.
type Category struct {
	ID   int64
	Type string
}

// CategoryMap returns the id -> type mapping used in API responses.
func CategoryMap(categories []*Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// AllCategories is the quiz category id meaning "any category".
const AllCategories int64 = 0

// QuestionFilter is the predicate pushed down to the store.
// Zero values disable the corresponding clause; results are always ordered by id ascending.
type QuestionFilter struct {
	CategoryID int64   // equality on category when > 0
	SearchTerm string  // case-insensitive substring of the question text when non-empty
	ExcludeIDs []int64 // ids removed from the result
}
