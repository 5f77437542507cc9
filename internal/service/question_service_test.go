package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/quiz-backend/internal/repository"
)

func TestQuestionService(t *testing.T) {
	repo, err := repository.NewQuestionRepository(repository.DefaultQuestions())
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	svc := NewQuestionService(repo, zerolog.Nop())
	ctx := context.Background()

	if got := svc.ListAll(ctx); len(got) != 5 || svc.Count() != 5 {
		t.Fatalf("expected 5 questions, got %d (count %d)", len(got), svc.Count())
	}

	q, err := svc.GetByID(ctx, 5)
	if err != nil || q.ID != 5 || q.CorrectAnswer != 2 {
		t.Fatalf("GetByID(5) = %+v, %v", q, err)
	}

	if _, err := svc.GetByID(ctx, 42); !errors.Is(err, repository.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
