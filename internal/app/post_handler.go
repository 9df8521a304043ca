package app

import (
	"errors"
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles publishing a community post
// POST /api/community/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var input service.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	post, err := h.postService.Create(userID, input)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusCreated, post)
}

// Get handles fetching one post
// GET /api/community/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	viewerID := middleware.ActingUser(c)

	post, err := h.postService.GetByID(viewerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			util.NotFound(c, "post not found")
			return
		}
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusOK, post)
}

// List handles fetching the community feed newest first
// GET /api/community/posts?limit=20&offset=0
func (h *PostHandler) List(c *gin.Context) {
	viewerID := middleware.ActingUser(c)
	limit, offset := pagination(c)

	posts, total, err := h.postService.List(viewerID, limit, offset)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{
		"posts":  posts,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Delete handles removal by the post owner
// DELETE /api/community/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	userID := middleware.ActingUser(c)

	if err := h.postService.Delete(userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "post not found")
		case errors.Is(err, service.ErrNotOwner):
			util.Forbidden(c, err.Error())
		default:
			util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{"deleted": true})
}
