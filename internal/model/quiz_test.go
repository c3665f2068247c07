package model

import "testing"

func sampleQuizAndQuestions() (*Quiz, []Question) {
	quiz := &Quiz{
		ID:           1,
		Title:        "Go Basics",
		CategoryID:   2,
		CategoryName: "Programming",
		TimeLimit:    30,
		PassingScore: 60,
		IsActive:     true,
	}
	questions := []Question{
		{ID: 10, QuizID: 1, QuestionText: "q1", CorrectAnswer: ChoiceA, Marks: 1, IsActive: true},
		{ID: 11, QuizID: 1, QuestionText: "q2", CorrectAnswer: ChoiceB, Marks: 2, IsActive: true},
		{ID: 12, QuizID: 1, QuestionText: "q3", CorrectAnswer: ChoiceC, Marks: 3, IsActive: false},
	}
	return quiz, questions
}

func TestNewQuizDetailAdmin(t *testing.T) {
	quiz, questions := sampleQuizAndQuestions()

	detail := NewQuizDetail(quiz, questions, RoleAdmin)

	views, ok := detail.Questions.([]QuestionView)
	if !ok {
		t.Fatalf("questions type = %T, want []QuestionView", detail.Questions)
	}
	if len(views) != 3 {
		t.Fatalf("admin sees %d questions, want 3 (inactive included)", len(views))
	}
	if views[0].CorrectAnswer != ChoiceA {
		t.Error("admin view missing correct answer")
	}
	if detail.QuestionCount != 2 {
		t.Errorf("question_count = %d, want 2 (active only)", detail.QuestionCount)
	}
}

func TestNewQuizDetailUser(t *testing.T) {
	quiz, questions := sampleQuizAndQuestions()

	detail := NewQuizDetail(quiz, questions, RoleUser)

	views, ok := detail.Questions.([]QuestionPublicView)
	if !ok {
		t.Fatalf("questions type = %T, want []QuestionPublicView", detail.Questions)
	}
	if len(views) != 2 {
		t.Fatalf("user sees %d questions, want 2 (active only)", len(views))
	}
	for _, v := range views {
		if v.ID == 12 {
			t.Error("inactive question leaked to user view")
		}
	}
	if detail.QuestionCount != 2 {
		t.Errorf("question_count = %d, want 2", detail.QuestionCount)
	}
}

func TestNewQuizDetailEmptyQuestions(t *testing.T) {
	quiz, _ := sampleQuizAndQuestions()

	detail := NewQuizDetail(quiz, nil, RoleUser)

	views, ok := detail.Questions.([]QuestionPublicView)
	if !ok {
		t.Fatalf("questions type = %T, want []QuestionPublicView", detail.Questions)
	}
	if len(views) != 0 {
		t.Errorf("len = %d, want 0", len(views))
	}
	if detail.QuestionCount != 0 {
		t.Errorf("question_count = %d, want 0", detail.QuestionCount)
	}
}
