package app

import (
	"errors"
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/model"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles fetching the comment thread for a post or recipe
// GET /api/community/:type/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	viewerID := middleware.ActingUser(c)

	targetType, ok := targetFromCollection(c.Param("type"))
	if !ok {
		util.BadRequest(c, "unknown content type")
		return
	}
	targetID := c.Param("id")

	comments, _, err := h.commentService.ListByTarget(viewerID, targetType, targetID)
	if err != nil {
		if errors.Is(err, service.ErrBadTarget) {
			util.BadRequest(c, "content type has no comments")
			return
		}
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// data is the bare comment array; clients derive totals themselves.
	if comments == nil {
		comments = []*model.Comment{}
	}
	util.SuccessResponse(c, http.StatusOK, comments)
}

// Create handles posting a comment or reply
// POST /api/community/:type/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.ActingUser(c)

	targetType, ok := targetFromCollection(c.Param("type"))
	if !ok {
		util.BadRequest(c, "unknown content type")
		return
	}
	targetID := c.Param("id")

	var input service.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	comment, err := h.commentService.Create(userID, targetType, targetID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "content not found")
		case errors.Is(err, service.ErrBadTarget), errors.Is(err, service.ErrNestedReply):
			util.BadRequest(c, err.Error())
		default:
			util.BadRequest(c, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusCreated, comment)
}
