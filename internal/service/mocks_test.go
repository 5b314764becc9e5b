package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionsByIDs(ctx context.Context, ids []int64) ([]*domain.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// --- MockTransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

// WithTransaction runs fn directly unless the expectation returns an error.
func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- fakeStore: in-memory implementation of the repository ports ---
type fakeStore struct {
	mu         sync.Mutex
	nextID     int64
	questions  map[int64]*domain.Question
	categories []*domain.Category
}

func newFakeStore(categories ...string) *fakeStore {
	s := &fakeStore{nextID: 1, questions: map[int64]*domain.Question{}}
	for i, c := range categories {
		s.categories = append(s.categories, &domain.Category{ID: int64(i + 1), Type: c})
	}
	return s
}

// put stores q with a caller-chosen id
func (s *fakeStore) put(id int64, question string, category int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[id] = &domain.Question{ID: id, Question: question, Answer: "answer", CategoryID: category, Difficulty: 1}
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

func (s *fakeStore) ListQuestions(_ context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	excluded := map[int64]bool{}
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}
	term := strings.ToLower(filter.SearchTerm)

	out := []*domain.Question{}
	for _, q := range s.questions {
		if filter.CategoryID > 0 && q.CategoryID != filter.CategoryID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(q.Question), term) {
			continue
		}
		if excluded[q.ID] {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) GetQuestionByID(_ context.Context, id int64) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (s *fakeStore) GetQuestionsByIDs(ctx context.Context, ids []int64) ([]*domain.Question, error) {
	out := []*domain.Question{}
	for _, id := range ids {
		q, _ := s.GetQuestionByID(ctx, id)
		if q != nil {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeStore) SaveQuestion(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.nextID
	s.nextID++
	cp := *q
	s.questions[q.ID] = &cp
	return nil
}

func (s *fakeStore) DeleteQuestion(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}

func (s *fakeStore) GetAllCategories(_ context.Context) ([]*domain.Category, error) {
	return s.categories, nil
}

func (s *fakeStore) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
