package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/services"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type RetestHandler struct {
	log     *logger.Logger
	retests services.RetestService
}

func NewRetestHandler(log *logger.Logger, retests services.RetestService) *RetestHandler {
	return &RetestHandler{
		log:     log.With("handler", "RetestHandler"),
		retests: retests,
	}
}

type completeRetestRequest struct {
	Result types.RetestResult `json:"result"`
}

// GET /api/retests
func (h *RetestHandler) List(c *gin.Context) {
	rows, err := h.retests.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// PUT /api/retests/:id/complete
func (h *RetestHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	var req completeRetestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	row, err := h.retests.Complete(c.Request.Context(), id, req.Result)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, row)
}
