package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/quiz-backend/internal/model"
	"github.com/stemsi/quiz-backend/internal/repository"
)

// QuestionService handles question business logic.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// ListAll retrieves every question in definition order.
func (s *QuestionService) ListAll(ctx context.Context) []model.Question {
	return s.questionRepo.ListAll()
}

// GetByID retrieves a single question.
// Returns repository.ErrQuestionNotFound if no question has that id.
func (s *QuestionService) GetByID(ctx context.Context, id int) (model.Question, error) {
	q, err := s.questionRepo.GetByID(id)
	if err != nil {
		s.log.Debug().Int("question_id", id).Msg("Question lookup missed")
		return model.Question{}, err
	}
	return q, nil
}

// Count returns the number of questions being served.
func (s *QuestionService) Count() int {
	return s.questionRepo.Len()
}
