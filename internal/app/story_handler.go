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

type StoryHandler struct {
	storyService service.StoryService
}

func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// List handles the transformation gallery with its filter bar
// GET /api/success-stories?petType=&transformationType=&timeframe=&sortBy=
func (h *StoryHandler) List(c *gin.Context) {
	filter := service.StoryFilter{
		PetType:            c.Query("petType"),
		TransformationType: c.Query("transformationType"),
		Timeframe:          c.Query("timeframe"),
		SortBy:             c.Query("sortBy"),
	}

	stories, err := h.storyService.List(filter)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	// data is the bare story array per the gallery wire contract.
	if stories == nil {
		stories = []*model.SuccessStory{}
	}
	util.SuccessResponse(c, http.StatusOK, stories)
}

// SetLiked handles setting or clearing a like on a story
// POST /api/success-stories/:id/like
func (h *StoryHandler) SetLiked(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var req struct {
		Liked *bool `json:"liked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "liked is required")
		return
	}

	state, err := h.storyService.SetLiked(userID, c.Param("id"), *req.Liked)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			util.NotFound(c, "story not found")
			return
		}
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusOK, state)
}

// Create handles submitting a transformation story
// POST /api/success-stories
func (h *StoryHandler) Create(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var input service.CreateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	story, err := h.storyService.Create(userID, input)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusCreated, story)
}
