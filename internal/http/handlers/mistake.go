package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/services"
)

type MistakeHandler struct {
	log      *logger.Logger
	mistakes services.MistakeService
}

func NewMistakeHandler(log *logger.Logger, mistakes services.MistakeService) *MistakeHandler {
	return &MistakeHandler{
		log:      log.With("handler", "MistakeHandler"),
		mistakes: mistakes,
	}
}

// mistakeID parses the :id param. A malformed id cannot match any record, so
// it surfaces as 404 rather than 400.
func mistakeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/mistakes
func (h *MistakeHandler) List(c *gin.Context) {
	rows, err := h.mistakes.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/mistakes/:id
func (h *MistakeHandler) Get(c *gin.Context) {
	id, ok := mistakeID(c)
	if !ok {
		return
	}
	row, err := h.mistakes.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/mistakes
func (h *MistakeHandler) Create(c *gin.Context) {
	var in services.MistakeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	row, err := h.mistakes.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, row)
}

// PUT /api/mistakes/:id
func (h *MistakeHandler) Update(c *gin.Context) {
	id, ok := mistakeID(c)
	if !ok {
		return
	}
	var in services.MistakeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	row, err := h.mistakes.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/mistakes/:id
func (h *MistakeHandler) Delete(c *gin.Context) {
	id, ok := mistakeID(c)
	if !ok {
		return
	}
	if err := h.mistakes.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
