package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz play
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo domain.QuestionRepository
	rng  domain.RandomSource
}

// NewQuizService creates a new instance of quizService. A nil rng uses the shared default source.
func NewQuizService(repo domain.QuestionRepository, rng domain.RandomSource) QuizService {
	if rng == nil {
		rng = domain.DefaultRandomSource()
	}
	return &quizService{
		repo: repo,
		rng:  rng,
	}
}

// NextQuestion implements QuizService. It returns a nil question, not an error, when the category is exhausted.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req == nil || req.QuizCategory == nil {
		return nil, domain.NewUnprocessableError("quiz_category is required", nil)
	}
	categoryID := req.QuizCategory.ID.Int64()
	if categoryID < domain.AllCategories {
		return nil, domain.NewUnprocessableError("quiz_category.id must not be negative", nil)
	}

	// ids that no longer exist are ignored
	previous, err := s.repo.GetQuestionsByIDs(ctx, req.PreviousIDs())
	if err != nil {
		return nil, domain.NewError(domain.ErrNotFound, "Unable to resolve previous questions", err)
	}
	excluded := domain.QuestionIDs(previous)

	filter := domain.QuestionFilter{ExcludeIDs: excluded}
	if categoryID != domain.AllCategories {
		filter.CategoryID = categoryID
	}
	candidates, err := s.repo.ListQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewError(domain.ErrNotFound, "Unable to load quiz questions", err)
	}

	picked := domain.PickQuestion(candidates, excluded, s.rng)
	if picked == nil {
		logger.Get().Debug("Quiz exhausted",
			zap.Int64("category", categoryID),
			zap.Int("previous", len(excluded)))
		return &dto.QuizResponse{Success: true}, nil
	}

	resp := dto.ToQuestionResponse(picked)
	return &dto.QuizResponse{Success: true, Question: &resp}, nil
}
