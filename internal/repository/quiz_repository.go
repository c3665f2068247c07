package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shahisiiii/quiz-platform/internal/model"
)

// QuizRepository handles quiz data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a new quiz.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (title, description, category_id, time_limit, passing_score, is_active, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		q.Title, q.Description, q.CategoryID, q.TimeLimit, q.PassingScore, q.IsActive, q.CreatedBy,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetByID retrieves a quiz with its category name.
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT q.id, q.title, q.description, q.category_id, c.name,
		        q.time_limit, q.passing_score, q.is_active, q.created_by,
		        q.created_at, q.updated_at
		 FROM quizzes q
		 JOIN categories c ON c.id = q.category_id
		 WHERE q.id = $1`, id,
	).Scan(&q.ID, &q.Title, &q.Description, &q.CategoryID, &q.CategoryName,
		&q.TimeLimit, &q.PassingScore, &q.IsActive, &q.CreatedBy,
		&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// List returns quizzes newest first, each with its active-question count.
// With onlyActive set, inactive quizzes are excluded (non-admin reads).
func (r *QuizRepository) List(ctx context.Context, onlyActive bool) ([]model.QuizListItem, error) {
	query := `SELECT q.id, q.title, q.description, q.category_id, c.name,
	                 q.time_limit, q.passing_score, q.is_active,
	                 COUNT(qs.id) FILTER (WHERE qs.is_active) AS question_count,
	                 q.created_at
	          FROM quizzes q
	          JOIN categories c ON c.id = q.category_id
	          LEFT JOIN questions qs ON qs.quiz_id = q.id`
	if onlyActive {
		query += ` WHERE q.is_active`
	}
	query += ` GROUP BY q.id, c.name ORDER BY q.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.QuizListItem
	for rows.Next() {
		var item model.QuizListItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.CategoryID,
			&item.CategoryName, &item.TimeLimit, &item.PassingScore, &item.IsActive,
			&item.QuestionCount, &item.CreatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, item)
	}
	return quizzes, rows.Err()
}

// Update persists all mutable quiz fields.
func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes
		 SET title = $1, description = $2, category_id = $3, time_limit = $4,
		     passing_score = $5, is_active = $6, updated_at = NOW()
		 WHERE id = $7`,
		q.Title, q.Description, q.CategoryID, q.TimeLimit, q.PassingScore, q.IsActive, q.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a quiz. Owned questions cascade.
func (r *QuizRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
