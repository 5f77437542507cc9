package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quiz-backend/internal/model"
	"github.com/stemsi/quiz-backend/internal/repository"
	"github.com/stemsi/quiz-backend/internal/response"
	"github.com/stemsi/quiz-backend/internal/service"
	"github.com/stemsi/quiz-backend/internal/validator"
)

// QuestionHandler serves the read-only question endpoints.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions godoc
// GET /questions
// Lists every question in definition order.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.questionService.ListAll(c.Request.Context()))
}

// GetQuestion godoc
// GET /questions/:question_id
// Returns a single question, or 404 when the id is unknown.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	var uri model.QuestionURI
	if fields := validator.BindURI(c, &uri); fields != nil {
		// An integer too large for int can never match a stored id.
		if isOutOfRangeInt(c.Param("question_id")) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrInvalidID, map[string]string{
			"question_id": response.GetMessage(response.ErrInvalidID),
		})
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), uri.QuestionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, question)
}

func isOutOfRangeInt(raw string) bool {
	_, err := strconv.Atoi(raw)
	return errors.Is(err, strconv.ErrRange)
}
