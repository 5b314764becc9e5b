package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var categories []models.Category
	if err := exec.SelectContext(ctx, &categories, "SELECT id, type FROM categories ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = convertToDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// GetCategoryByID returns the category or nil when it does not exist
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var category models.Category
	if err := exec.GetContext(ctx, &category, exec.Rebind("SELECT id, type FROM categories WHERE id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return convertToDomainCategory(&category), nil
}

func convertToDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
