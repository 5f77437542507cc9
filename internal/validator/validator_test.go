package validator

import (
	"errors"
	"testing"

	"github.com/stemsi/quiz-backend/internal/model"
)

func TestStructAcceptsValidQuestion(t *testing.T) {
	q := model.Question{ID: 1, Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 1}
	if fields := Struct(q); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	tests := []struct {
		name      string
		question  model.Question
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing prompt",
			question:  model.Question{ID: 1, Options: []string{"a"}},
			wantField: "question",
			wantMsg:   "question is a required field",
		},
		{
			name:      "answer out of range",
			question:  model.Question{ID: 1, Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 2},
			wantField: "correct_answer",
			wantMsg:   "correct_answer must be a valid index into options",
		},
		{
			name:      "negative answer",
			question:  model.Question{ID: 1, Question: "q", Options: []string{"a"}, CorrectAnswer: -1},
			wantField: "correct_answer",
			wantMsg:   "correct_answer must be 0 or greater",
		},
		{
			name:      "nil options",
			question:  model.Question{ID: 1, Question: "q"},
			wantField: "options",
			wantMsg:   "options is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Struct(tt.question)
			if fields == nil {
				t.Fatal("expected validation errors")
			}
			if got := fields[tt.wantField]; got != tt.wantMsg {
				t.Fatalf("fields[%q] = %q, want %q (all: %v)", tt.wantField, got, tt.wantMsg, fields)
			}
		})
	}
}

func TestVarUniqueIDs(t *testing.T) {
	unique := []model.Question{{ID: 1}, {ID: 2}}
	if err := Var(unique, "unique=ID"); err != nil {
		t.Fatalf("expected unique ids to pass, got %v", err)
	}
	dup := []model.Question{{ID: 1}, {ID: 1}}
	if err := Var(dup, "unique=ID"); err == nil {
		t.Fatal("expected duplicate ids to fail")
	}
}

func TestTranslateErrorsNonValidation(t *testing.T) {
	fields := TranslateErrors(errors.New("boom"))
	if fields["detail"] != "boom" {
		t.Fatalf("expected detail entry, got %v", fields)
	}
}

func TestFormatFieldsIsSorted(t *testing.T) {
	got := FormatFields(map[string]string{"options": "b", "correct_answer": "a"})
	want := "correct_answer: a; options: b"
	if got != want {
		t.Fatalf("FormatFields = %q, want %q", got, want)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Setup()
	if engine == nil || trans == nil {
		t.Fatal("expected engine and translator to be initialized")
	}
}
