package model

import "time"

// Category groups quizzes by topic. Name is unique.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   *int64    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryView is a category with its derived active-quiz count.
type CategoryView struct {
	Category
	QuizCount int `json:"quiz_count"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool  `json:"is_active" binding:"omitempty"`
}

// UpdateCategoryRequest is the payload for updating a category.
// All fields are optional so PATCH bodies behave; absent fields keep
// their stored values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active" binding:"omitempty"`
}
