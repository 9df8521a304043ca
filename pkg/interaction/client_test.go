package interaction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTypePaths(t *testing.T) {
	tests := []struct {
		typ      ItemType
		singular string
		path     string
	}{
		{TypePost, "post", "posts"},
		{TypeRecipe, "recipe", "recipes"},
		{TypeComment, "comment", "comments"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.singular, tt.typ.String())
		assert.Equal(t, tt.path, tt.typ.CollectionPath())
		assert.True(t, tt.typ.Valid())
	}
	assert.False(t, ItemType(42).Valid())
}

func TestSetLikedRequestShape(t *testing.T) {
	var gotPath, gotUser string
	var gotBody map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser = r.Header.Get("x-user-id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"liked": true, "likes": 6})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	err := c.SetLiked(context.Background(), Item{ID: "p5", Type: TypePost}, true)

	require.NoError(t, err)
	assert.Equal(t, "/api/community/posts/p5/like", gotPath)
	assert.Equal(t, "demo-user", gotUser)
	assert.Equal(t, map[string]bool{"liked": true}, gotBody)
}

func TestSetSavedRequestShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"saved": false})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	err := c.SetSaved(context.Background(), Item{ID: "r2", Type: TypeRecipe}, false)

	require.NoError(t, err)
	assert.Equal(t, "/api/community/recipes/r2/save", gotPath)
	assert.Equal(t, map[string]bool{"saved": false}, gotBody)
}

func TestUpdateRecipeUsesContractFieldNames(t *testing.T) {
	var gotMethod string
	var raw map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	err := c.UpdateRecipe(context.Background(), "r2", RecipeUpdate{
		Title:            "80/10/10 base",
		IngredientsList:  []string{"chicken thigh", "beef liver"},
		InstructionsList: []string{"weigh", "mix"},
		Servings:         4,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Contains(t, raw, "ingredientsList")
	assert.Contains(t, raw, "instructionsList")
}

func TestDeleteRecipeSendsIdentity(t *testing.T) {
	var gotMethod, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotUser = r.Header.Get("x-user-id")
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "alice"})
	require.NoError(t, c.DeleteRecipe(context.Background(), "r2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "alice", gotUser)
}

func TestSuccessStoriesQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeEnvelope(w, http.StatusOK, []SuccessStory{{ID: "s1", PetName: "Koda"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	stories, err := c.SuccessStories(context.Background(), StoryFilter{
		PetType:            "dog",
		TransformationType: "coat",
		Timeframe:          "3-6months",
		SortBy:             "popular",
	})

	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Koda", stories[0].PetName)
	assert.Equal(t, "dog", gotQuery["petType"][0])
	assert.Equal(t, "coat", gotQuery["transformationType"][0])
	assert.Equal(t, "3-6months", gotQuery["timeframe"][0])
	assert.Equal(t, "popular", gotQuery["sortBy"][0])
}

func TestSuccessFalseEnvelopeBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "post not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	err := c.SetLiked(context.Background(), Item{ID: "missing", Type: TypePost}, true)

	require.Error(t, err)
	assert.EqualError(t, err, "post not found")
}

func TestActionRowComposition(t *testing.T) {
	c := NewClient("http://unused", ActingUser{ID: "demo-user"})
	sharer := NewSharer("https://example.com", nil, nil)
	item := Item{ID: "r1", Type: TypeRecipe}

	row := NewActionRow(c, sharer, item, Seed{
		Liked: true, Likes: 12, Saved: false, CommentCount: 4,
		Title: "Novice duck blend",
	}, nil, nil)

	liked, likes := row.Like.State()
	assert.True(t, liked)
	assert.Equal(t, 12, likes)
	saved, _ := row.Save.State()
	assert.False(t, saved)
	assert.Equal(t, 4, row.Thread.Count())

	content := row.Share.Content(row.ShareInput())
	assert.Equal(t, "https://example.com/community/recipes/r1", content.URL)

	assert.True(t, row.CanEdit("demo-user"))
	assert.False(t, row.CanEdit("someone-else"))
	assert.False(t, row.CanEdit(""))
}

func TestDeleteRecipeConfirmationGate(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ActingUser{ID: "demo-user"})
	row := NewActionRow(c, NewSharer("https://example.com", nil, nil), Item{ID: "r1", Type: TypeRecipe}, Seed{}, nil, nil)

	err := row.DeleteRecipe(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.Equal(t, 0, requests, "a missing confirm func must not send the request")

	err = row.DeleteRecipe(context.Background(), func(prompt string) bool { return false })
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.Equal(t, 0, requests, "refused confirmation must not send the request")

	err = row.DeleteRecipe(context.Background(), func(prompt string) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}
