package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/relearnhq/relearn-backend/internal/http/response"
	"github.com/relearnhq/relearn-backend/internal/spacing"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler { return &CategoryHandler{} }

type categoryInfo struct {
	Value       types.Category `json:"value"`
	Label       string         `json:"label"`
	OffsetsDays []int          `json:"offsetsDays"`
}

// GET /api/categories
// The enumeration is static, so clients can render pickers and explain the
// retest cadence without hardcoding the policy.
func (h *CategoryHandler) List(c *gin.Context) {
	out := make([]categoryInfo, 0, len(types.Categories()))
	for _, cat := range types.Categories() {
		out = append(out, categoryInfo{
			Value:       cat,
			Label:       spacing.LabelFor(cat),
			OffsetsDays: spacing.OffsetsFor(cat),
		})
	}
	response.RespondOK(c, out)
}
