package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shahisiiii/quiz-platform/internal/model"
)

// ErrDuplicateCategory is returned when a category name is already taken.
var ErrDuplicateCategory = errors.New("category with this name already exists")

// CategoryRepository handles category data access.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description, is_active, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Description, c.IsActive, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c := &model.Category{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, is_active, created_by, created_at, updated_at
		 FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns categories ordered by name, each with its active-quiz count.
// With onlyActive set, inactive categories are excluded (non-admin reads).
func (r *CategoryRepository) List(ctx context.Context, onlyActive bool) ([]model.CategoryView, error) {
	query := `SELECT c.id, c.name, c.description, c.is_active, c.created_by,
	                 c.created_at, c.updated_at,
	                 COUNT(q.id) FILTER (WHERE q.is_active) AS quiz_count
	          FROM categories c
	          LEFT JOIN quizzes q ON q.category_id = c.id`
	if onlyActive {
		query += ` WHERE c.is_active`
	}
	query += ` GROUP BY c.id ORDER BY c.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.CategoryView
	for rows.Next() {
		var v model.CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.IsActive, &v.CreatedBy,
			&v.CreatedAt, &v.UpdatedAt, &v.QuizCount); err != nil {
			return nil, err
		}
		categories = append(categories, v)
	}
	return categories, rows.Err()
}

// Update persists all mutable category fields.
func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE categories SET name = $1, description = $2, is_active = $3, updated_at = NOW()
		 WHERE id = $4`,
		c.Name, c.Description, c.IsActive, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCategory
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category. Quizzes in the category cascade.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
