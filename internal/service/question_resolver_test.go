package service

import (
	"encoding/json"
	"errors"
	"testing"

	"quizforge/internal/dto"
	"quizforge/internal/model"
)

func TestResolveStoredQuestions(t *testing.T) {
	r := NewQuestionResolver()
	quiz := &model.Quiz{GameFormat: model.FormatTraditional}
	stored := []model.Question{{ID: 10}, {ID: 11}, {ID: 12}}

	resolved, err := r.Resolve(quiz, stored, nil, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("resolved %d questions, want 3", len(resolved))
	}
	for i, q := range resolved {
		if q.Virtual() {
			t.Errorf("question %d unexpectedly virtual", i)
		}
		if q.Real.ID != stored[i].ID || q.Ordinal != i+1 {
			t.Errorf("question %d = {ID %d, Ordinal %d}, want {ID %d, Ordinal %d}",
				i, q.Real.ID, q.Ordinal, stored[i].ID, i+1)
		}
	}
}

func TestResolveTraditionalWithoutQuestionsFails(t *testing.T) {
	r := NewQuestionResolver()
	quiz := &model.Quiz{GameFormat: model.FormatTraditional}

	if _, err := r.Resolve(quiz, nil, nil, 0); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Resolve = %v, want ErrNoQuestions", err)
	}
}

func TestResolveVirtualFallbackChain(t *testing.T) {
	r := NewQuestionResolver()

	tests := []struct {
		name        string
		quiz        model.Quiz
		results     *dto.GameResults
		answerCount int
		want        int
	}{
		{
			name:    "totalQuestions wins",
			quiz:    model.Quiz{GameFormat: model.FormatKnowledgeTower, TotalQuestions: 20},
			results: &dto.GameResults{TotalQuestions: intPtr(8), TotalWords: intPtr(3)},
			want:    8,
		},
		{
			name:    "totalWords next",
			quiz:    model.Quiz{GameFormat: model.FormatHangman},
			results: &dto.GameResults{TotalWords: intPtr(6)},
			want:    6,
		},
		{
			name:    "totalLevels next",
			quiz:    model.Quiz{GameFormat: model.FormatKnowledgeTower},
			results: &dto.GameResults{TotalLevels: intPtr(7)},
			want:    7,
		},
		{
			name:    "results length next",
			quiz:    model.Quiz{GameFormat: model.FormatHangman},
			results: &dto.GameResults{Results: []json.RawMessage{[]byte(`{}`), []byte(`{}`)}},
			want:    2,
		},
		{
			name: "quiz total next",
			quiz: model.Quiz{GameFormat: model.FormatHangman, TotalQuestions: 12},
			want: 12,
		},
		{
			name:        "answer count next",
			quiz:        model.Quiz{GameFormat: model.FormatHangman},
			answerCount: 4,
			want:        4,
		},
		{
			name: "final default",
			quiz: model.Quiz{GameFormat: model.FormatHangman},
			want: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := r.Resolve(&tt.quiz, nil, tt.results, tt.answerCount)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if len(resolved) != tt.want {
				t.Fatalf("resolved %d virtual questions, want %d", len(resolved), tt.want)
			}
			for i, q := range resolved {
				if !q.Virtual() {
					t.Errorf("question %d not virtual", i)
				}
				if q.Ordinal != i+1 {
					t.Errorf("question %d ordinal = %d, want %d", i, q.Ordinal, i+1)
				}
			}
		})
	}
}

func TestResolveIgnoresNonPositiveCounts(t *testing.T) {
	r := NewQuestionResolver()
	quiz := &model.Quiz{GameFormat: model.FormatHangman}
	results := &dto.GameResults{TotalQuestions: intPtr(0), TotalWords: intPtr(-1)}

	resolved, err := r.Resolve(quiz, nil, results, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolved) != 5 {
		t.Fatalf("resolved %d questions, want the default 5", len(resolved))
	}
}
