package repository

import (
	"errors"
	"fmt"

	"github.com/stemsi/quiz-backend/internal/model"
	"github.com/stemsi/quiz-backend/internal/validator"
)

var (
	// ErrQuestionNotFound is returned when no question has the requested id.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidQuestionSet is returned when the questions handed to the
	// repository break a model invariant.
	ErrInvalidQuestionSet = errors.New("invalid question set")
)

// QuestionRepository is the process-wide question store. It is populated
// once at construction and read-only afterwards, so concurrent readers
// need no locking.
type QuestionRepository struct {
	questions []model.Question
}

// NewQuestionRepository validates questions and builds a store holding a
// private copy of them, in the given order.
func NewQuestionRepository(questions []model.Question) (*QuestionRepository, error) {
	for i, q := range questions {
		if fields := validator.Struct(q); fields != nil {
			return nil, fmt.Errorf("%w: question at index %d (id %d): %s",
				ErrInvalidQuestionSet, i, q.ID, validator.FormatFields(fields))
		}
	}
	if err := validator.Var(questions, "unique=ID"); err != nil {
		return nil, fmt.Errorf("%w: question ids must be unique", ErrInvalidQuestionSet)
	}

	return &QuestionRepository{questions: cloneQuestions(questions)}, nil
}

// ListAll returns every question in definition order.
func (r *QuestionRepository) ListAll() []model.Question {
	return cloneQuestions(r.questions)
}

// GetByID returns the question with the given id.
func (r *QuestionRepository) GetByID(id int) (model.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return q.Clone(), nil
		}
	}
	return model.Question{}, ErrQuestionNotFound
}

// Len returns the number of stored questions.
func (r *QuestionRepository) Len() int {
	return len(r.questions)
}

func cloneQuestions(src []model.Question) []model.Question {
	out := make([]model.Question, len(src))
	for i, q := range src {
		out[i] = q.Clone()
	}
	return out
}
