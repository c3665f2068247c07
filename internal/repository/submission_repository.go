package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shahisiiii/quiz-platform/internal/model"
)

// SubmissionRepository handles submission and answer data access.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// CreateWithAnswers persists a submission and all of its answers in one
// transaction. Readers observe either the full submission or nothing.
func (r *SubmissionRepository) CreateWithAnswers(ctx context.Context, s *model.Submission) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO submissions (user_id, quiz_id, total_marks, obtained_marks, score, passed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, submitted_at`,
		s.UserID, s.QuizID, s.TotalMarks, s.ObtainedMarks, s.Score, s.Passed,
	).Scan(&s.ID, &s.SubmittedAt)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	for i := range s.Answers {
		a := &s.Answers[i]
		a.SubmissionID = s.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO answers (submission_id, question_id, selected_answer, is_correct, marks_obtained)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			a.SubmissionID, a.QuestionID, a.SelectedAnswer, a.IsCorrect, a.MarksObtained,
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves one submission with its full answer breakdown.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*model.SubmissionView, error) {
	v := &model.SubmissionView{}
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.user_id, u.username, s.quiz_id, q.title,
		        s.submitted_at, s.total_marks, s.obtained_marks, s.score, s.passed
		 FROM submissions s
		 JOIN users u ON u.id = s.user_id
		 JOIN quizzes q ON q.id = s.quiz_id
		 WHERE s.id = $1`, id,
	).Scan(&v.ID, &v.UserID, &v.Username, &v.QuizID, &v.QuizTitle,
		&v.SubmittedAt, &v.TotalMarks, &v.ObtainedMarks, &v.Score, &v.Passed)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT a.question_id, qs.question_text, a.selected_answer, qs.correct_answer,
		        a.is_correct, a.marks_obtained
		 FROM answers a
		 JOIN questions qs ON qs.id = a.question_id
		 WHERE a.submission_id = $1
		 ORDER BY a.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.QuestionID, &a.QuestionText, &a.SelectedAnswer,
			&a.CorrectAnswer, &a.IsCorrect, &a.MarksObtained); err != nil {
			return nil, err
		}
		v.Answers = append(v.Answers, a)
	}
	if v.Answers == nil {
		v.Answers = []model.Answer{}
	}
	return v, rows.Err()
}

// List returns submissions newest first. Pass userID=0 to list all (admin);
// otherwise only that user's submissions are returned.
func (r *SubmissionRepository) List(ctx context.Context, userID int64) ([]model.SubmissionListItem, error) {
	query := `SELECT s.id, u.username, u.email, s.quiz_id, q.title,
	                 s.submitted_at, s.total_marks, s.obtained_marks, s.score, s.passed
	          FROM submissions s
	          JOIN users u ON u.id = s.user_id
	          JOIN quizzes q ON q.id = s.quiz_id`
	var args []any
	if userID > 0 {
		query += ` WHERE s.user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY s.submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.SubmissionListItem
	for rows.Next() {
		var item model.SubmissionListItem
		if err := rows.Scan(&item.ID, &item.Username, &item.Email, &item.QuizID, &item.QuizTitle,
			&item.SubmittedAt, &item.TotalMarks, &item.ObtainedMarks, &item.Score, &item.Passed); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Stats aggregates all submissions for one quiz.
func (r *SubmissionRepository) Stats(ctx context.Context, quizID int64) (*model.QuizStats, error) {
	st := &model.QuizStats{QuizID: quizID}
	err := r.pool.QueryRow(ctx,
		`SELECT q.title,
		        COUNT(s.id),
		        COUNT(DISTINCT s.user_id),
		        COALESCE(ROUND(AVG(s.score)::numeric, 2), 0),
		        COALESCE(MAX(s.score), 0),
		        COALESCE(MIN(s.score), 0),
		        COUNT(s.id) FILTER (WHERE s.passed)
		 FROM quizzes q
		 LEFT JOIN submissions s ON s.quiz_id = q.id
		 WHERE q.id = $1
		 GROUP BY q.id`, quizID,
	).Scan(&st.QuizTitle, &st.TotalAttempts, &st.UniqueUsers, &st.AverageScore,
		&st.HighestScore, &st.LowestScore, &st.PassedCount)
	if err != nil {
		return nil, err
	}

	st.FailedCount = st.TotalAttempts - st.PassedCount
	if st.TotalAttempts > 0 {
		st.PassRate = float64(st.PassedCount) / float64(st.TotalAttempts) * 100
		st.PassRate = float64(int(st.PassRate*100+0.5)) / 100
	}
	return st, nil
}
