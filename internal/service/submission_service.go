package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

var (
	// ErrQuizNotAvailable means the quiz is inactive; callers see 404, not
	// 403, so the existence of unpublished quizzes is not leaked.
	ErrQuizNotAvailable = errors.New("quiz is not available")
	// ErrDuplicateAnswer means the payload answered one question twice.
	ErrDuplicateAnswer = errors.New("duplicate answer for question")
	// ErrInvalidQuestion means an answer referenced a question that does not
	// exist, is inactive, or belongs to another quiz.
	ErrInvalidQuestion = errors.New("invalid question reference")
	// ErrNoQuestions means the quiz has no active questions to grade against.
	ErrNoQuestions = errors.New("quiz has no active questions")
)

// SubmissionService grades and records quiz attempts.
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	quizRepo       *repository.QuizRepository
	questionRepo   *repository.QuestionRepository
	store          *cache.Store
	log            zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	store *cache.Store,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		store:          store,
		log:            log.With().Str("component", "submission_service").Logger(),
	}
}

// scoreAnswers grades a payload against a quiz's active questions. The
// denominator is the sum of marks of the questions actually answered, so a
// partial attempt is scored against what it attempted. Score is a
// percentage rounded to two decimals; an empty denominator yields 0.
func scoreAnswers(questions map[int64]*model.Question, answers []model.AnswerInput) (*model.Submission, error) {
	seen := make(map[int64]bool, len(answers))
	sub := &model.Submission{Answers: make([]model.Answer, 0, len(answers))}

	for _, in := range answers {
		if seen[in.QuestionID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateAnswer, in.QuestionID)
		}
		seen[in.QuestionID] = true

		q, ok := questions[in.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuestion, in.QuestionID)
		}

		selected := model.AnswerChoice(in.SelectedAnswer)
		ans := model.Answer{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
		}
		sub.TotalMarks += q.Marks
		if selected == q.CorrectAnswer {
			ans.IsCorrect = true
			ans.MarksObtained = q.Marks
			sub.ObtainedMarks += q.Marks
		}
		sub.Answers = append(sub.Answers, ans)
	}

	if sub.TotalMarks > 0 {
		sub.Score = math.Round(float64(sub.ObtainedMarks)/float64(sub.TotalMarks)*10000) / 100
	}
	return sub, nil
}

// Submit grades and records one attempt. Retakes are unrestricted; each
// call creates a new submission.
func (s *SubmissionService) Submit(ctx context.Context, userID int64, req *model.SubmitRequest) (*model.Submission, error) {
	quiz, err := s.quizRepo.GetByID(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, ErrQuizNotAvailable
	}

	active, err := s.questionRepo.ListByQuiz(ctx, quiz.ID, true)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, ErrNoQuestions
	}
	byID := make(map[int64]*model.Question, len(active))
	for i := range active {
		byID[active[i].ID] = &active[i]
	}

	sub, err := scoreAnswers(byID, req.Answers)
	if err != nil {
		return nil, err
	}
	sub.UserID = userID
	sub.QuizID = quiz.ID
	sub.Passed = sub.Score >= float64(quiz.PassingScore)

	if err := s.submissionRepo.CreateWithAnswers(ctx, sub); err != nil {
		return nil, err
	}

	s.store.Delete(ctx,
		config.CacheKey.UserSubmissions(userID),
		config.CacheKey.QuizStats(quiz.ID),
	)
	s.log.Info().
		Int64("user_id", userID).
		Int64("quiz_id", quiz.ID).
		Float64("score", sub.Score).
		Bool("passed", sub.Passed).
		Msg("submission recorded")
	return sub, nil
}

// List returns submissions scoped to the caller. Admins see everyone's;
// users see their own, cached for 5 minutes.
func (s *SubmissionService) List(ctx context.Context, userID int64, role model.Role) ([]model.SubmissionListItem, error) {
	if role == model.RoleAdmin {
		items, err := s.submissionRepo.List(ctx, 0)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.SubmissionListItem{}
		}
		return items, nil
	}

	key := config.CacheKey.UserSubmissions(userID)

	var cached []model.SubmissionListItem
	if s.store.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.submissionRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.SubmissionListItem{}
	}

	s.store.SetJSON(ctx, key, items, config.UserSubmissionsTTL)
	return items, nil
}

// Get returns one submission with its answer breakdown. Only the owner or
// an admin may read it; anyone else gets not-found, never forbidden.
func (s *SubmissionService) Get(ctx context.Context, id, callerID int64, role model.Role) (*model.SubmissionView, error) {
	view, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && view.UserID != callerID {
		return nil, repository.ErrNotFound
	}
	return view, nil
}
