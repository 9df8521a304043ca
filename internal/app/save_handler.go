package app

import (
	"errors"
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type SaveHandler struct {
	saveService service.SaveService
}

func NewSaveHandler(saveService service.SaveService) *SaveHandler {
	return &SaveHandler{saveService: saveService}
}

// SetSaved handles setting or clearing a bookmark
// POST /api/community/:type/:id/save
func (h *SaveHandler) SetSaved(c *gin.Context) {
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
		Saved *bool `json:"saved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "saved is required")
		return
	}

	state, err := h.saveService.SetSaved(userID, targetType, targetID, *req.Saved)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "content not found")
		case errors.Is(err, service.ErrBadTarget):
			util.BadRequest(c, "content type cannot be saved")
		default:
			util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusOK, state)
}
