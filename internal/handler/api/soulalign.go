package api

import (
	"errors"
	"net/http"

	reqdto "leen-studio/internal/handler/dto/request"
	"leen-studio/internal/usecase/queries"
	"leen-studio/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// SoulAlignHandler is the relay endpoint used by the landing page. It is
// stateless: nothing here touches the session.
type SoulAlignHandler struct {
	soulAlignQueries queries.SoulAlignQueries
}

func NewSoulAlignHandler(soulAlignQueries queries.SoulAlignQueries) *SoulAlignHandler {
	return &SoulAlignHandler{soulAlignQueries: soulAlignQueries}
}

// @Summary Soul alignment
// @Description Turn a free-text feeling into a mantra and class recommendation
// @Tags soul-alignment
// @Accept json
// @Produce json
// @Param request body reqdto.SoulAlignRequest true "How the guest feels"
// @Success 200 {object} queries.AlignmentView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /soul-alignment [post]
func (h *SoulAlignHandler) Align(c *gin.Context) {
	var req reqdto.SoulAlignRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.soulAlignQueries.Align(c.Request.Context(), req.UserFeeling)
	if err != nil {
		if errors.Is(err, shared.ErrAlignerNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Soul alignment is not configured",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}
