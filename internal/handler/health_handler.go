package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quiz-backend/internal/response"
	"github.com/stemsi/quiz-backend/internal/service"
)

type HealthHandler struct {
	questionService *service.QuestionService
}

func NewHealthHandler(questionService *service.QuestionService) *HealthHandler {
	return &HealthHandler{questionService: questionService}
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "ok",
		"questions": h.questionService.Count(),
	})
}
