package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

// QuestionService handles question CRUD through the flat collection.
// Every mutation invalidates the owning quiz's cached projections: the
// question count, the detail payloads, and the stats all derive from it.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	quizRepo     *repository.QuizRepository
	store        *cache.Store
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	quizRepo *repository.QuizRepository,
	store *cache.Store,
	log zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		store:        store,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// List returns every question across all quizzes. Admin only; the router
// never exposes this to regular users, so no projection is applied.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}

// Get returns one question with its answer key. Admin only.
func (s *QuestionService) Get(ctx context.Context, id int64) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Create inserts a question after resolving its quiz.
func (s *QuestionService) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	if _, err := s.quizRepo.GetByID(ctx, req.QuizID); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:        req.QuizID,
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

	s.store.Delete(ctx, config.CacheKey.QuizKeys(question.QuizID)...)
	return question, nil
}

// Update applies the provided fields. Moving a question between quizzes is
// not supported; the quiz reference is fixed at creation.
func (s *QuestionService) Update(ctx context.Context, id int64, req *model.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.OptionA != nil {
		question.OptionA = *req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = *req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = *req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = *req.OptionD
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = model.AnswerChoice(*req.CorrectAnswer)
	}
	if req.Marks != nil {
		question.Marks = *req.Marks
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	s.store.Delete(ctx, config.CacheKey.QuizKeys(question.QuizID)...)
	return question, nil
}

// Delete removes a question and invalidates its quiz's keys.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Delete(ctx, config.CacheKey.QuizKeys(question.QuizID)...)
	return nil
}
