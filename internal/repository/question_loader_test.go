package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stemsi/quiz-backend/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadQuestionsFileYAML(t *testing.T) {
	path := writeTempFile(t, "questions.yaml", `
questions:
  - id: 10
    question: "Which keyword declares a constant in Go?"
    options: ["var", "const", "let"]
    correct_answer: 1
  - id: 11
    question: "Zero value of a bool?"
    options: ["true", "false"]
    correct_answer: 1
`)

	got, err := LoadQuestionsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Question{
		{ID: 10, Question: "Which keyword declares a constant in Go?", Options: []string{"var", "const", "let"}, CorrectAnswer: 1},
		{ID: 11, Question: "Zero value of a bool?", Options: []string{"true", "false"}, CorrectAnswer: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected questions\n got: %+v\nwant: %+v", got, want)
	}
}

func TestLoadQuestionsFileJSON(t *testing.T) {
	path := writeTempFile(t, "questions.json",
		`{"questions":[{"id":1,"question":"q","options":["a","b"],"correct_answer":0}]}`)

	got, err := LoadQuestionsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].Options[1] != "b" {
		t.Fatalf("unexpected questions: %+v", got)
	}
}

func TestLoadQuestionsFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown yaml field", "q.yaml", "questions:\n  - id: 1\n    answer: 2\n", "parse yaml"},
		{"unknown json field", "q.json", `{"questions":[],"extra":true}`, "parse json"},
		{"multiple json documents", "q.json", `{"questions":[]} {"questions":[]}`, "multiple documents"},
		{"multiple yaml documents", "q.yml", "questions: []\n---\nquestions: []\n", "multiple documents"},
		{"empty set", "q.yaml", "questions: []\n", "no questions defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			_, err := LoadQuestionsFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadQuestionsFileMissing(t *testing.T) {
	_, err := LoadQuestionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read question file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadedQuestionsStillValidated(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", `
questions:
  - id: 1
    question: "q"
    options: ["a"]
    correct_answer: 3
`)
	questions, err := LoadQuestionsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := NewQuestionRepository(questions); err == nil {
		t.Fatal("expected validation error for out-of-range answer")
	}
}
