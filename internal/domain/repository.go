package domain

import "context"

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns every question matching filter, ordered by id ascending
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	// GetQuestionByID returns nil, nil when no question has the id
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// GetQuestionsByIDs returns the stored questions among ids; unknown ids are skipped
	GetQuestionsByIDs(ctx context.Context, ids []int64) ([]*Question, error)

	// SaveQuestion inserts q and sets q.ID
	SaveQuestion(ctx context.Context, q *Question) error

	// DeleteQuestion reports whether a row was removed
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by id
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when no category has the id
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
}

// TransactionManager runs fn inside a store transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
