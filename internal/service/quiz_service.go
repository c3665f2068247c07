package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

// ErrCategoryNotFound distinguishes a bad category reference on a quiz
// write from the quiz itself being missing.
var ErrCategoryNotFound = errors.New("category does not exist")

// QuizService handles quiz CRUD, role projection, and statistics, with
// read-through caching on hot paths.
type QuizService struct {
	quizRepo       *repository.QuizRepository
	questionRepo   *repository.QuestionRepository
	categoryRepo   *repository.CategoryRepository
	submissionRepo *repository.SubmissionRepository
	store          *cache.Store
	log            zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	categoryRepo *repository.CategoryRepository,
	submissionRepo *repository.SubmissionRepository,
	store *cache.Store,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		categoryRepo:   categoryRepo,
		submissionRepo: submissionRepo,
		store:          store,
		log:            log.With().Str("component", "quiz_service").Logger(),
	}
}

// List returns quizzes for the caller's role. Non-admins get the active
// list, cached for 5 minutes; admins read the store unfiltered.
func (s *QuizService) List(ctx context.Context, role model.Role) ([]model.QuizListItem, error) {
	if role == model.RoleAdmin {
		return s.quizRepo.List(ctx, false)
	}

	key := config.CacheKey.ActiveQuizzes()

	var cached []model.QuizListItem
	if s.store.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	quizzes, err := s.quizRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []model.QuizListItem{}
	}

	s.store.SetJSON(ctx, key, quizzes, config.QuizListTTL)
	return quizzes, nil
}

// Get returns the role-projected quiz detail, cached per role variant.
// Non-admins cannot see inactive quizzes and never receive answer keys.
func (s *QuizService) Get(ctx context.Context, id int64, role model.Role) (*model.QuizDetail, error) {
	key := config.CacheKey.QuizDetail(id, role == model.RoleAdmin)

	var cached model.QuizDetail
	if s.store.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && !quiz.IsActive {
		return nil, repository.ErrNotFound
	}

	questions, err := s.questionRepo.ListByQuiz(ctx, id, false)
	if err != nil {
		return nil, err
	}

	detail := model.NewQuizDetail(quiz, questions, role)
	s.store.SetJSON(ctx, key, detail, config.QuizDetailTTL)
	return &detail, nil
}

// Create inserts a quiz after resolving its category.
func (s *QuizService) Create(ctx context.Context, req *model.CreateQuizRequest, creatorID int64) (*model.Quiz, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	quiz := &model.Quiz{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		TimeLimit:    req.TimeLimit,
		PassingScore: req.PassingScore,
		IsActive:     true,
		CreatedBy:    &creatorID,
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.ActiveQuizzes())
	s.log.Info().Int64("quiz_id", quiz.ID).Msg("quiz created")
	return quiz, nil
}

// Update applies the provided fields and invalidates every key scoped to
// the quiz, both role variants of the detail included.
func (s *QuizService) Update(ctx context.Context, id int64, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != quiz.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		quiz.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.QuizKeys(id)...)
	return quiz, nil
}

// Delete removes a quiz and its questions (cascade), then invalidates the
// quiz-scoped keys.
func (s *QuizService) Delete(ctx context.Context, id int64) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Delete(ctx, config.CacheKey.QuizKeys(id)...)
	return nil
}

// AddQuestion appends a question to the quiz and invalidates its keys.
func (s *QuizService) AddQuestion(ctx context.Context, quizID int64, req *model.AddQuestionRequest) (*model.Question, error) {
	if _, err := s.quizRepo.GetByID(ctx, quizID); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: model.AnswerChoice(req.CorrectAnswer),
		Marks:         req.Marks,
		IsActive:      true,
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.QuizKeys(quizID)...)
	return question, nil
}

// Statistics aggregates a quiz's submissions, cached for one hour and
// invalidated whenever the quiz receives a new submission.
func (s *QuizService) Statistics(ctx context.Context, quizID int64) (*model.QuizStats, error) {
	key := config.CacheKey.QuizStats(quizID)

	var cached model.QuizStats
	if s.store.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	stats, err := s.submissionRepo.Stats(ctx, quizID)
	if err != nil {
		return nil, err
	}

	s.store.SetJSON(ctx, key, stats, config.QuizStatsTTL)
	return stats, nil
}
