package service

import (
	"testing"

	"rawtails/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedRecipe(id, ownerID string) *model.Recipe {
	r := &model.Recipe{
		ID:     id,
		UserID: ownerID,
		Title:  "Chicken & Organ Mix",
	}
	r.SetIngredients([]string{"chicken thigh", "chicken liver"})
	r.SetInstructions([]string{"portion", "serve"})
	return r
}

func TestUpdateRecipeOwnerOnly(t *testing.T) {
	recipeRepo := &stubRecipeRepo{
		findByIDFn: func(id string) (*model.Recipe, error) {
			return ownedRecipe(id, "owner-1"), nil
		},
	}
	svc := NewRecipeService(recipeRepo, &stubLikeRepo{}, &stubSaveRepo{}, &stubCommentRepo{})

	title := "New title"
	_, err := svc.Update("someone-else", "recipe-1", UpdateRecipeInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateRecipeAppliesPartialEdit(t *testing.T) {
	var updated *model.Recipe
	recipeRepo := &stubRecipeRepo{
		findByIDFn: func(id string) (*model.Recipe, error) {
			return ownedRecipe(id, "owner-1"), nil
		},
		updateFn: func(recipe *model.Recipe) error {
			updated = recipe
			return nil
		},
	}
	svc := NewRecipeService(recipeRepo, &stubLikeRepo{}, &stubSaveRepo{}, &stubCommentRepo{})

	ingredients := []string{"turkey", "turkey heart"}
	recipe, err := svc.Update("owner-1", "recipe-1", UpdateRecipeInput{
		IngredientsList: &ingredients,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, ingredients, recipe.GetIngredients())
	assert.Equal(t, "Chicken & Organ Mix", recipe.Title, "unset fields stay unchanged")
	assert.Equal(t, []string{"portion", "serve"}, recipe.GetInstructions())
}

func TestDeleteRecipeOwnerOnly(t *testing.T) {
	recipeRepo := &stubRecipeRepo{
		findByIDFn: func(id string) (*model.Recipe, error) {
			return ownedRecipe(id, "owner-1"), nil
		},
		deleteFn: func(id string) error {
			t.Fatal("Delete must not be called for a non-owner")
			return nil
		},
	}
	svc := NewRecipeService(recipeRepo, &stubLikeRepo{}, &stubSaveRepo{}, &stubCommentRepo{})

	err := svc.Delete("someone-else", "recipe-1")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteRecipeByOwner(t *testing.T) {
	deleted := false
	recipeRepo := &stubRecipeRepo{
		findByIDFn: func(id string) (*model.Recipe, error) {
			return ownedRecipe(id, "owner-1"), nil
		},
		deleteFn: func(id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewRecipeService(recipeRepo, &stubLikeRepo{}, &stubSaveRepo{}, &stubCommentRepo{})

	require.NoError(t, svc.Delete("owner-1", "recipe-1"))
	assert.True(t, deleted)
}

func TestListRecipesEnrichesEngagement(t *testing.T) {
	recipeRepo := &stubRecipeRepo{
		findAllFn: func(limit, offset int) ([]*model.Recipe, int64, error) {
			return []*model.Recipe{ownedRecipe("recipe-1", "owner-1")}, 1, nil
		},
	}
	likeRepo := &stubLikeRepo{
		countManyFn: func(targetType string, targetIDs []string) (map[string]int64, error) {
			return map[string]int64{"recipe-1": 7}, nil
		},
		likedTargetsFn: func(userID, targetType string, targetIDs []string) (map[string]bool, error) {
			return map[string]bool{"recipe-1": true}, nil
		},
	}
	saveRepo := &stubSaveRepo{
		countManyFn: func(targetType string, targetIDs []string) (map[string]int64, error) {
			return map[string]int64{"recipe-1": 2}, nil
		},
	}
	commentRepo := &stubCommentRepo{
		countManyFn: func(targetType string, targetIDs []string) (map[string]int64, error) {
			return map[string]int64{"recipe-1": 4}, nil
		},
	}
	svc := NewRecipeService(recipeRepo, likeRepo, saveRepo, commentRepo)

	recipes, total, err := svc.List("viewer-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, int64(7), recipes[0].Likes)
	assert.Equal(t, int64(2), recipes[0].Saves)
	assert.Equal(t, int64(4), recipes[0].Comments)
	assert.True(t, recipes[0].Liked)
	assert.False(t, recipes[0].Saved)
}

func TestCreateRecipeDefaultsServings(t *testing.T) {
	var created *model.Recipe
	recipeRepo := &stubRecipeRepo{
		createFn: func(recipe *model.Recipe) error {
			created = recipe
			return nil
		},
	}
	svc := NewRecipeService(recipeRepo, &stubLikeRepo{}, &stubSaveRepo{}, &stubCommentRepo{})

	_, err := svc.Create("user-1", CreateRecipeInput{
		Title:        "Beef base",
		Ingredients:  []string{"beef"},
		Instructions: []string{"serve"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 1, created.Servings)
	assert.Equal(t, "user-1", created.UserName)
}
