package service

import (
	"errors"
	"testing"

	"github.com/shahisiiii/quiz-platform/internal/model"
)

func questionSet(qs ...model.Question) map[int64]*model.Question {
	m := make(map[int64]*model.Question, len(qs))
	for i := range qs {
		m[qs[i].ID] = &qs[i]
	}
	return m
}

func TestScoreAnswers(t *testing.T) {
	questions := questionSet(
		model.Question{ID: 1, CorrectAnswer: model.ChoiceA, Marks: 2},
		model.Question{ID: 2, CorrectAnswer: model.ChoiceB, Marks: 2},
		model.Question{ID: 3, CorrectAnswer: model.ChoiceC, Marks: 2},
	)

	tests := []struct {
		name         string
		answers      []model.AnswerInput
		wantObtained int
		wantTotal    int
		wantScore    float64
	}{
		{
			name: "all correct",
			answers: []model.AnswerInput{
				{QuestionID: 1, SelectedAnswer: "A"},
				{QuestionID: 2, SelectedAnswer: "B"},
				{QuestionID: 3, SelectedAnswer: "C"},
			},
			wantObtained: 6, wantTotal: 6, wantScore: 100,
		},
		{
			name: "one of three correct",
			answers: []model.AnswerInput{
				{QuestionID: 1, SelectedAnswer: "A"},
				{QuestionID: 2, SelectedAnswer: "D"},
				{QuestionID: 3, SelectedAnswer: "A"},
			},
			wantObtained: 2, wantTotal: 6, wantScore: 33.33,
		},
		{
			name: "partial attempt scored against answered marks only",
			answers: []model.AnswerInput{
				{QuestionID: 1, SelectedAnswer: "A"},
			},
			wantObtained: 2, wantTotal: 2, wantScore: 100,
		},
		{
			name: "all wrong",
			answers: []model.AnswerInput{
				{QuestionID: 1, SelectedAnswer: "B"},
				{QuestionID: 2, SelectedAnswer: "C"},
			},
			wantObtained: 0, wantTotal: 4, wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := scoreAnswers(questions, tt.answers)
			if err != nil {
				t.Fatalf("scoreAnswers: %v", err)
			}
			if sub.ObtainedMarks != tt.wantObtained {
				t.Errorf("obtained = %d, want %d", sub.ObtainedMarks, tt.wantObtained)
			}
			if sub.TotalMarks != tt.wantTotal {
				t.Errorf("total = %d, want %d", sub.TotalMarks, tt.wantTotal)
			}
			if sub.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", sub.Score, tt.wantScore)
			}
			if len(sub.Answers) != len(tt.answers) {
				t.Errorf("answers = %d, want %d", len(sub.Answers), len(tt.answers))
			}
		})
	}
}

func TestScoreAnswersRounding(t *testing.T) {
	// 1 of 3 single-mark questions answered correctly → 33.333... → 33.33
	questions := questionSet(
		model.Question{ID: 1, CorrectAnswer: model.ChoiceA, Marks: 1},
		model.Question{ID: 2, CorrectAnswer: model.ChoiceA, Marks: 1},
		model.Question{ID: 3, CorrectAnswer: model.ChoiceA, Marks: 1},
	)
	sub, err := scoreAnswers(questions, []model.AnswerInput{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 2, SelectedAnswer: "B"},
		{QuestionID: 3, SelectedAnswer: "B"},
	})
	if err != nil {
		t.Fatalf("scoreAnswers: %v", err)
	}
	if sub.Score != 33.33 {
		t.Errorf("score = %v, want 33.33", sub.Score)
	}

	// 2 of 3 → 66.666... → 66.67 (round half up, two decimals)
	sub, err = scoreAnswers(questions, []model.AnswerInput{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 2, SelectedAnswer: "A"},
		{QuestionID: 3, SelectedAnswer: "B"},
	})
	if err != nil {
		t.Fatalf("scoreAnswers: %v", err)
	}
	if sub.Score != 66.67 {
		t.Errorf("score = %v, want 66.67", sub.Score)
	}
}

func TestScoreAnswersDuplicateQuestion(t *testing.T) {
	questions := questionSet(
		model.Question{ID: 1, CorrectAnswer: model.ChoiceA, Marks: 1},
	)
	_, err := scoreAnswers(questions, []model.AnswerInput{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 1, SelectedAnswer: "B"},
	})
	if !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("err = %v, want ErrDuplicateAnswer", err)
	}
}

func TestScoreAnswersUnknownQuestion(t *testing.T) {
	questions := questionSet(
		model.Question{ID: 1, CorrectAnswer: model.ChoiceA, Marks: 1},
	)
	_, err := scoreAnswers(questions, []model.AnswerInput{
		{QuestionID: 99, SelectedAnswer: "A"},
	})
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("err = %v, want ErrInvalidQuestion", err)
	}
}
