package model

import "time"

// Quiz is an authored set of questions within a category.
type Quiz struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	TimeLimit    int       `json:"time_limit"`
	PassingScore int       `json:"passing_score"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    *int64    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateQuizRequest is the payload for creating a quiz.
type CreateQuizRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
	CategoryID   int64  `json:"category_id" binding:"required"`
	TimeLimit    int    `json:"time_limit" binding:"required,min=1,max=480"`
	PassingScore int    `json:"passing_score" binding:"min=0,max=100"`
	IsActive     *bool  `json:"is_active" binding:"omitempty"`
}

// UpdateQuizRequest is the payload for updating a quiz (PUT and PATCH).
type UpdateQuizRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	CategoryID   *int64  `json:"category_id" binding:"omitempty"`
	TimeLimit    *int    `json:"time_limit" binding:"omitempty,min=1,max=480"`
	PassingScore *int    `json:"passing_score" binding:"omitempty,min=0,max=100"`
	IsActive     *bool   `json:"is_active" binding:"omitempty"`
}

// QuizListItem is the list projection: no questions, derived count only.
type QuizListItem struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CategoryID    int64     `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	TimeLimit     int       `json:"time_limit"`
	PassingScore  int       `json:"passing_score"`
	IsActive      bool      `json:"is_active"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizDetail is the role-projected quiz detail payload. Questions holds
// QuestionView values for admins and QuestionPublicView values otherwise.
type QuizDetail struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	CategoryID    int64       `json:"category_id"`
	CategoryName  string      `json:"category_name"`
	TimeLimit     int         `json:"time_limit"`
	PassingScore  int         `json:"passing_score"`
	IsActive      bool        `json:"is_active"`
	QuestionCount int         `json:"question_count"`
	Questions     interface{} `json:"questions"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewQuizDetail projects a quiz and its questions for the caller's role.
// Admins see every question with the answer key; everyone else sees only
// active questions without correct_answer or is_active. The projection is a
// pure function of (quiz, questions, role) — handlers never branch on role
// when serializing.
func NewQuizDetail(quiz *Quiz, questions []Question, role Role) QuizDetail {
	d := QuizDetail{
		ID:           quiz.ID,
		Title:        quiz.Title,
		Description:  quiz.Description,
		CategoryID:   quiz.CategoryID,
		CategoryName: quiz.CategoryName,
		TimeLimit:    quiz.TimeLimit,
		PassingScore: quiz.PassingScore,
		IsActive:     quiz.IsActive,
		CreatedAt:    quiz.CreatedAt,
		UpdatedAt:    quiz.UpdatedAt,
	}

	activeCount := 0
	for _, q := range questions {
		if q.IsActive {
			activeCount++
		}
	}
	d.QuestionCount = activeCount

	if role == RoleAdmin {
		views := make([]QuestionView, 0, len(questions))
		for _, q := range questions {
			views = append(views, NewQuestionView(&q))
		}
		d.Questions = views
		return d
	}

	views := make([]QuestionPublicView, 0, activeCount)
	for _, q := range questions {
		if q.IsActive {
			views = append(views, NewQuestionPublicView(&q))
		}
	}
	d.Questions = views
	return d
}
