package app

import (
	"errors"
	"net/http"
	"strconv"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService service.RecipeService
}

func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Create handles submitting a new recipe
// POST /api/community/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var input service.CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	recipe, err := h.recipeService.Create(userID, input)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusCreated, recipe)
}

// Get handles fetching one recipe
// GET /api/community/recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	viewerID := middleware.ActingUser(c)

	recipe, err := h.recipeService.GetByID(viewerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			util.NotFound(c, "recipe not found")
			return
		}
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusOK, recipe)
}

// List handles fetching recipes newest first
// GET /api/community/recipes?limit=20&offset=0
func (h *RecipeHandler) List(c *gin.Context) {
	viewerID := middleware.ActingUser(c)
	limit, offset := pagination(c)

	recipes, total, err := h.recipeService.List(viewerID, limit, offset)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// Update handles partial edits by the recipe owner
// PATCH /api/community/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	userID := middleware.ActingUser(c)

	var input service.UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, util.ValidationMessage(err))
		return
	}

	recipe, err := h.recipeService.Update(userID, c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			util.Forbidden(c, err.Error())
		default:
			util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusOK, recipe)
}

// Delete handles removal by the recipe owner
// DELETE /api/community/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID := middleware.ActingUser(c)

	if err := h.recipeService.Delete(userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.NotFound(c, "recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			util.Forbidden(c, err.Error())
		default:
			util.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{"deleted": true})
}

// pagination reads limit/offset query params with sane bounds
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
