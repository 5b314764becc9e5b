package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, question, answer, category, difficulty"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	query := "SELECT " + questionColumns + " FROM questions WHERE id = ?"

	var row models.Question
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// GetQuestionsByIDs implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByIDs(ctx context.Context, ids []int64) ([]*domain.Question, error) {
	if len(ids) == 0 {
		return []*domain.Question{}, nil
	}

	query, args, err := sqlx.In("SELECT "+questionColumns+" FROM questions WHERE id IN (?) ORDER BY id ASC", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build question id query: %w", err)
	}

	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by IDs: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot save nil question")
	}
	m := toModelQuestion(q)

	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?) RETURNING id`

	var id int64
	if err := exec.GetContext(ctx, &id, exec.Rebind(query), m.Question, m.Answer, m.Category, m.Difficulty); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	q.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	exec := GetExecutor(ctx, a.db)
	result, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM questions WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// buildListQuery turns a filter into a single SELECT with `?` placeholders.
func buildListQuery(filter domain.QuestionFilter) (string, []interface{}, error) {
	var conds []string
	var args []interface{}

	if filter.CategoryID > 0 {
		conds = append(conds, "category = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		conds = append(conds, `LOWER(question) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(filter.SearchTerm))+"%")
	}
	if len(filter.ExcludeIDs) > 0 {
		conds = append(conds, "id NOT IN (?)")
		args = append(args, filter.ExcludeIDs)
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	if len(filter.ExcludeIDs) > 0 {
		return sqlx.In(query, args...)
	}
	return query, args, nil
}

// Helper functions for model conversion
func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		CategoryID: m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	out := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuestion(&rows[i]))
	}
	return out
}

func toModelQuestion(d *domain.Question) *models.Question {
	return &models.Question{
		ID:         d.ID,
		Question:   d.Question,
		Answer:     d.Answer,
		Category:   d.CategoryID,
		Difficulty: d.Difficulty,
	}
}
