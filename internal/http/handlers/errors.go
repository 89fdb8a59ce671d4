package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/pkg/apperr"
)

// respondServiceError maps the service error taxonomy onto status codes:
// not-found 404, invalid input 400, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.IsInvalidArgument(err):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
