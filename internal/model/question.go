package model

import "time"

// AnswerChoice is one of the four fixed option labels.
type AnswerChoice string

const (
	ChoiceA AnswerChoice = "A"
	ChoiceB AnswerChoice = "B"
	ChoiceC AnswerChoice = "C"
	ChoiceD AnswerChoice = "D"
)

// Question is a four-option multiple-choice question owned by one quiz.
type Question struct {
	ID            int64        `json:"id"`
	QuizID        int64        `json:"quiz_id"`
	QuestionText  string       `json:"question_text"`
	OptionA       string       `json:"option_a"`
	OptionB       string       `json:"option_b"`
	OptionC       string       `json:"option_c"`
	OptionD       string       `json:"option_d"`
	CorrectAnswer AnswerChoice `json:"correct_answer"`
	Marks         int          `json:"marks"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// AddQuestionRequest is the payload for appending a question to a quiz.
type AddQuestionRequest struct {
	QuestionText  string `json:"question_text" binding:"required,min=1,max=2000"`
	OptionA       string `json:"option_a" binding:"required,max=500"`
	OptionB       string `json:"option_b" binding:"required,max=500"`
	OptionC       string `json:"option_c" binding:"required,max=500"`
	OptionD       string `json:"option_d" binding:"required,max=500"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=A B C D"`
	Marks         int    `json:"marks" binding:"required,min=1"`
	IsActive      *bool  `json:"is_active" binding:"omitempty"`
}

// CreateQuestionRequest creates a question through the flat /questions
// collection; it is AddQuestionRequest plus an explicit quiz reference.
type CreateQuestionRequest struct {
	QuizID int64 `json:"quiz_id" binding:"required"`
	AddQuestionRequest
}

// UpdateQuestionRequest is the payload for updating a question (PUT and PATCH).
type UpdateQuestionRequest struct {
	QuestionText  *string `json:"question_text" binding:"omitempty,min=1,max=2000"`
	OptionA       *string `json:"option_a" binding:"omitempty,max=500"`
	OptionB       *string `json:"option_b" binding:"omitempty,max=500"`
	OptionC       *string `json:"option_c" binding:"omitempty,max=500"`
	OptionD       *string `json:"option_d" binding:"omitempty,max=500"`
	CorrectAnswer *string `json:"correct_answer" binding:"omitempty,oneof=A B C D"`
	Marks         *int    `json:"marks" binding:"omitempty,min=1"`
	IsActive      *bool   `json:"is_active" binding:"omitempty"`
}

// QuestionView is the admin projection: includes the answer key.
type QuestionView struct {
	ID            int64        `json:"id"`
	QuizID        int64        `json:"quiz_id"`
	QuestionText  string       `json:"question_text"`
	OptionA       string       `json:"option_a"`
	OptionB       string       `json:"option_b"`
	OptionC       string       `json:"option_c"`
	OptionD       string       `json:"option_d"`
	CorrectAnswer AnswerChoice `json:"correct_answer"`
	Marks         int          `json:"marks"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// QuestionPublicView is the non-admin projection: no correct_answer, no
// is_active (inactive questions are filtered out before projection).
type QuestionPublicView struct {
	ID           int64  `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	Marks        int    `json:"marks"`
}

// NewQuestionView projects a question for admin callers.
func NewQuestionView(q *Question) QuestionView {
	return QuestionView{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.QuestionText,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		Marks:         q.Marks,
		IsActive:      q.IsActive,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// NewQuestionPublicView projects a question for non-admin callers.
func NewQuestionPublicView(q *Question) QuestionPublicView {
	return QuestionPublicView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		OptionA:      q.OptionA,
		OptionB:      q.OptionB,
		OptionC:      q.OptionC,
		OptionD:      q.OptionD,
		Marks:        q.Marks,
	}
}
