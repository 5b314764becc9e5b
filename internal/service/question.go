package service

import (
	"context"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the interface for question and category operations
type QuestionService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, req *dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

// questionService implements QuestionService
type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	tx         domain.TransactionManager
	pageSize   int
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	tx domain.TransactionManager,
	cfg *config.Config,
) QuestionService {
	pageSize := util.DefaultPageSize
	if cfg != nil && cfg.Quiz.PageSize > 0 {
		pageSize = cfg.Quiz.PageSize
	}
	return &questionService{
		questions:  questions,
		categories: categories,
		tx:         tx,
		pageSize:   pageSize,
	}
}

// GetCategories implements QuestionService
func (s *questionService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	}, nil
}

// ListQuestions implements QuestionService. An empty page is a bad request.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	var (
		questions  []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.ListQuestions(gctx, domain.QuestionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	current := util.Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewBadRequestError("Bad request")
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      dto.ToQuestionResponses(current),
		TotalQuestions: len(questions),
		Categories:     domain.CategoryMap(categories),
	}, nil
}

// SearchQuestions implements QuestionService
func (s *questionService) SearchQuestions(ctx context.Context, req *dto.SearchRequest, page int) (*dto.SearchQuestionsResponse, error) {
	if req == nil || req.SearchTerm == "" {
		return nil, domain.NewBadRequestError("searchTerm is required")
	}

	matches, err := s.questions.ListQuestions(ctx, domain.QuestionFilter{SearchTerm: req.SearchTerm})
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}
	if len(matches) == 0 {
		return nil, domain.NewNotFoundError("No questions match the search term")
	}

	current := util.Paginate(matches, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("Page not found")
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      dto.ToQuestionResponses(current),
		TotalQuestions: len(matches),
	}, nil
}

// GetQuestionsByCategory implements QuestionService. current_category is null when
// questions reference a category id that has no category row.
func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	if categoryID < 1 {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	questions, err := s.questions.ListQuestions(ctx, domain.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions by category", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("No questions found in category")
	}

	current := util.Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("Page not found")
	}

	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err)
	}
	var currentCategory *string
	if category != nil {
		currentCategory = &category.Type
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.ToQuestionResponses(current),
		TotalQuestions:  len(questions),
		CurrentCategory: currentCategory,
	}, nil
}

// CreateQuestion implements QuestionService. The insert and the follow-up listing share one transaction.
func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if req == nil {
		return nil, domain.NewUnprocessableError("Unprocessable resource", nil)
	}
	question := req.ToDomain()
	if err := question.Validate(); err != nil {
		return nil, err
	}

	var all []*domain.Question
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.questions.SaveQuestion(txCtx, question); err != nil {
			return err
		}
		var err error
		all, err = s.questions.ListQuestions(txCtx, domain.QuestionFilter{})
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("id", question.ID),
		zap.Int64("category", question.CategoryID))

	return &dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      dto.ToQuestionResponses(util.Paginate(all, page, s.pageSize)),
		TotalQuestions: len(all),
	}, nil
}

// DeleteQuestion implements QuestionService
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.questions.GetQuestionByID(txCtx, id)
		if err != nil {
			return domain.NewInternalError("Failed to get question", err)
		}
		if existing == nil {
			return domain.NewQuestionNotFoundError(id)
		}

		deleted, err := s.questions.DeleteQuestion(txCtx, id)
		if err != nil {
			return domain.NewInternalError("Failed to delete question", err)
		}
		if !deleted {
			return domain.NewQuestionNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Question deleted", zap.Int64("id", id))
	return &dto.DeleteQuestionResponse{Success: true, QuestionsID: id}, nil
}
