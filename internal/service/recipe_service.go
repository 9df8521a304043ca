package service

import (
	"errors"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type CreateRecipeInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions" binding:"required,min=1"`
	Photos       []string `json:"photos"`
	PrepTime     string   `json:"prepTime"`
	Servings     int      `json:"servings"`
}

// UpdateRecipeInput carries only the fields a recipe owner may edit.
// Nil pointers mean "leave unchanged". The list fields use the *List
// names the edit form sends.
type UpdateRecipeInput struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	IngredientsList  *[]string `json:"ingredientsList"`
	InstructionsList *[]string `json:"instructionsList"`
	Photos           *[]string `json:"photos"`
	PrepTime         *string   `json:"prepTime"`
	Servings         *int      `json:"servings"`
}

type RecipeService interface {
	Create(userID string, input CreateRecipeInput) (*model.Recipe, error)
	GetByID(viewerID, id string) (*model.Recipe, error)
	List(viewerID string, limit, offset int) ([]*model.Recipe, int64, error)
	Update(userID, id string, input UpdateRecipeInput) (*model.Recipe, error)
	Delete(userID, id string) error
}

type recipeService struct {
	recipeRepo  repository.RecipeRepository
	likeRepo    repository.LikeRepository
	saveRepo    repository.SaveRepository
	commentRepo repository.CommentRepository
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	likeRepo repository.LikeRepository,
	saveRepo repository.SaveRepository,
	commentRepo repository.CommentRepository,
) RecipeService {
	return &recipeService{
		recipeRepo:  recipeRepo,
		likeRepo:    likeRepo,
		saveRepo:    saveRepo,
		commentRepo: commentRepo,
	}
}

// Create adds a new recipe
func (s *recipeService) Create(userID string, input CreateRecipeInput) (*model.Recipe, error) {
	recipe := &model.Recipe{
		UserID:      userID,
		UserName:    userID,
		Title:       input.Title,
		Description: input.Description,
		PrepTime:    input.PrepTime,
		Servings:    input.Servings,
	}
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}
	if err := recipe.SetIngredients(input.Ingredients); err != nil {
		return nil, errors.New("invalid ingredients")
	}
	if err := recipe.SetInstructions(input.Instructions); err != nil {
		return nil, errors.New("invalid instructions")
	}
	if err := recipe.SetPhotos(input.Photos); err != nil {
		return nil, errors.New("invalid photos")
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, errors.New("failed to create recipe")
	}
	return recipe, nil
}

// GetByID fetches a single recipe with engagement fields for the viewer
func (s *recipeService) GetByID(viewerID, id string) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.enrich(viewerID, []*model.Recipe{recipe}); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List fetches recipes newest first with engagement fields for the viewer
func (s *recipeService) List(viewerID string, limit, offset int) ([]*model.Recipe, int64, error) {
	recipes, total, err := s.recipeRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, errors.New("failed to fetch recipes")
	}
	if err := s.enrich(viewerID, recipes); err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Update applies partial edits; only the recipe owner may update
func (s *recipeService) Update(userID, id string, input UpdateRecipeInput) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if recipe.UserID != userID {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.IngredientsList != nil {
		if err := recipe.SetIngredients(*input.IngredientsList); err != nil {
			return nil, errors.New("invalid ingredients")
		}
	}
	if input.InstructionsList != nil {
		if err := recipe.SetInstructions(*input.InstructionsList); err != nil {
			return nil, errors.New("invalid instructions")
		}
	}
	if input.Photos != nil {
		if err := recipe.SetPhotos(*input.Photos); err != nil {
			return nil, errors.New("invalid photos")
		}
	}
	if input.PrepTime != nil {
		recipe.PrepTime = *input.PrepTime
	}
	if input.Servings != nil && *input.Servings > 0 {
		recipe.Servings = *input.Servings
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, errors.New("failed to update recipe")
	}
	if err := s.enrich(userID, []*model.Recipe{recipe}); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe; only the recipe owner may delete
func (s *recipeService) Delete(userID, id string) error {
	recipe, err := s.recipeRepo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}
	if recipe.UserID != userID {
		return ErrNotOwner
	}
	if err := s.recipeRepo.Delete(id); err != nil {
		return errors.New("failed to delete recipe")
	}
	return nil
}

// enrich fills the virtual engagement fields with batch queries.
func (s *recipeService) enrich(viewerID string, recipes []*model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}

	likeCounts, err := s.likeRepo.CountByTargets(model.TargetTypeRecipe, ids)
	if err != nil {
		return errors.New("failed to count likes")
	}
	saveCounts, err := s.saveRepo.CountByTargets(model.TargetTypeRecipe, ids)
	if err != nil {
		return errors.New("failed to count saves")
	}
	commentCounts, err := s.commentRepo.CountByTargets(model.TargetTypeRecipe, ids)
	if err != nil {
		return errors.New("failed to count comments")
	}

	liked := map[string]bool{}
	saved := map[string]bool{}
	if viewerID != "" {
		liked, err = s.likeRepo.FindUserLikedTargets(viewerID, model.TargetTypeRecipe, ids)
		if err != nil {
			return errors.New("failed to resolve liked recipes")
		}
		saved, err = s.saveRepo.FindUserSavedTargets(viewerID, model.TargetTypeRecipe, ids)
		if err != nil {
			return errors.New("failed to resolve saved recipes")
		}
	}

	for _, r := range recipes {
		r.Likes = likeCounts[r.ID]
		r.Saves = saveCounts[r.ID]
		r.Comments = commentCounts[r.ID]
		r.Liked = liked[r.ID]
		r.Saved = saved[r.ID]
	}
	return nil
}
