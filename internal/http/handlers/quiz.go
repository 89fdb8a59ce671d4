package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/services"
)

type QuizHandler struct {
	log  *logger.Logger
	quiz services.QuizService
}

func NewQuizHandler(log *logger.Logger, quiz services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:  log.With("handler", "QuizHandler"),
		quiz: quiz,
	}
}

// GET /api/quiz
// Questions are derived from non-mastered mistakes; answers go through
// retest completion, so nothing is persisted here.
func (h *QuizHandler) Questions(c *gin.Context) {
	questions, err := h.quiz.Questions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, questions)
}
