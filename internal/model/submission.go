package model

import "time"

// Submission is a scored quiz attempt. Answers are immutable once created.
type Submission struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	QuizID        int64     `json:"quiz_id"`
	SubmittedAt   time.Time `json:"submitted_at"`
	TotalMarks    int       `json:"total_marks"`
	ObtainedMarks int       `json:"obtained_marks"`
	Score         float64   `json:"score"`
	Passed        bool      `json:"passed"`
	Answers       []Answer  `json:"answers,omitempty"`
}

// Answer is one graded per-question record inside a submission.
type Answer struct {
	ID             int64        `json:"-"`
	SubmissionID   int64        `json:"-"`
	QuestionID     int64        `json:"question_id"`
	QuestionText   string       `json:"question_text,omitempty"`
	SelectedAnswer AnswerChoice `json:"selected_answer"`
	CorrectAnswer  AnswerChoice `json:"correct_answer,omitempty"`
	IsCorrect      bool         `json:"is_correct"`
	MarksObtained  int          `json:"marks_obtained"`
}

// AnswerInput is one submitted (question, choice) pair.
type AnswerInput struct {
	QuestionID     int64  `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required,oneof=A B C D"`
}

// SubmitRequest is the payload for submitting quiz answers.
type SubmitRequest struct {
	QuizID  int64         `json:"quiz_id" binding:"required"`
	Answers []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// SubmissionView is the detail projection with the per-answer breakdown.
type SubmissionView struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Username      string    `json:"username"`
	QuizID        int64     `json:"quiz_id"`
	QuizTitle     string    `json:"quiz_title"`
	SubmittedAt   time.Time `json:"submitted_at"`
	TotalMarks    int       `json:"total_marks"`
	ObtainedMarks int       `json:"obtained_marks"`
	Score         float64   `json:"score"`
	Passed        bool      `json:"passed"`
	Answers       []Answer  `json:"answers"`
}

// SubmissionListItem is the list projection without answers.
type SubmissionListItem struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	QuizID        int64     `json:"quiz_id"`
	QuizTitle     string    `json:"quiz_title"`
	SubmittedAt   time.Time `json:"submitted_at"`
	TotalMarks    int       `json:"total_marks"`
	ObtainedMarks int       `json:"obtained_marks"`
	Score         float64   `json:"score"`
	Passed        bool      `json:"passed"`
}

// QuizStats aggregates submissions for one quiz.
type QuizStats struct {
	QuizID        int64   `json:"quiz_id"`
	QuizTitle     string  `json:"quiz_title"`
	TotalAttempts int     `json:"total_attempts"`
	UniqueUsers   int     `json:"unique_users"`
	AverageScore  float64 `json:"average_score"`
	HighestScore  float64 `json:"highest_score"`
	LowestScore   float64 `json:"lowest_score"`
	PassedCount   int     `json:"passed_count"`
	FailedCount   int     `json:"failed_count"`
	PassRate      float64 `json:"pass_rate"`
}
