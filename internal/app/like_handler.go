package app

import (
	"errors"
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// SetLiked handles setting or clearing a like
// POST /api/community/:type/:id/like
func (h *LikeHandler) SetLiked(c *gin.Context) {
	userID := middleware.ActingUser(c)

	targetType, ok := targetFromCollection(c.Param("type"))
	if !ok {
		util.BadRequest(c, "unknown content type")
		return
	}

	targetID := c.Param("id")
	if targetID == "" {
		util.BadRequest(c, "target id is required")
		return
	}

	var req struct {
		Liked *bool `json:"liked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "liked is required")
		return
	}

	state, err := h.likeService.SetLiked(userID, targetType, targetID, *req.Liked)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "content not found")
		case errors.Is(err, service.ErrBadTarget):
			util.BadRequest(c, err.Error())
		default:
			util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusOK, state)
}
