package service

import (
	"testing"

	"rawtails/internal/model"
	"rawtails/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryListNormalizesAllFilters(t *testing.T) {
	var got repository.StoryQuery
	storyRepo := &stubStoryRepo{
		findFn: func(query repository.StoryQuery) ([]*model.SuccessStory, error) {
			got = query
			return nil, nil
		},
	}
	svc := NewStoryService(storyRepo, &stubLikeRepo{})

	_, err := svc.List(StoryFilter{
		PetType:            "all",
		TransformationType: "all",
		Timeframe:          "all",
	})
	require.NoError(t, err)
	assert.Empty(t, got.PetType)
	assert.Empty(t, got.TransformationType)
	assert.Empty(t, got.Timeframe)
	assert.Equal(t, model.SortRecent, got.SortBy, "missing sortBy defaults to recent")
}

func TestStoryListPassesFiltersThrough(t *testing.T) {
	var got repository.StoryQuery
	storyRepo := &stubStoryRepo{
		findFn: func(query repository.StoryQuery) ([]*model.SuccessStory, error) {
			got = query
			return nil, nil
		},
	}
	svc := NewStoryService(storyRepo, &stubLikeRepo{})

	_, err := svc.List(StoryFilter{
		PetType:            "dog",
		TransformationType: "coat",
		Timeframe:          model.TimeframeMedium,
		SortBy:             model.SortPopular,
	})
	require.NoError(t, err)
	assert.Equal(t, "dog", got.PetType)
	assert.Equal(t, "coat", got.TransformationType)
	assert.Equal(t, model.TimeframeMedium, got.Timeframe)
	assert.Equal(t, model.SortPopular, got.SortBy)
}

func TestStoryListRejectsUnknownSort(t *testing.T) {
	svc := NewStoryService(&stubStoryRepo{}, &stubLikeRepo{})

	_, err := svc.List(StoryFilter{SortBy: "trending"})
	require.Error(t, err)
}

func TestStoryListRejectsUnknownTimeframe(t *testing.T) {
	svc := NewStoryService(&stubStoryRepo{}, &stubLikeRepo{})

	_, err := svc.List(StoryFilter{Timeframe: "2weeks"})
	require.Error(t, err)
}

func TestStoryCreateValidatesTimeframe(t *testing.T) {
	svc := NewStoryService(&stubStoryRepo{}, &stubLikeRepo{})

	_, err := svc.Create("user-1", CreateStoryInput{
		PetName:   "Mochi",
		PetType:   "cat",
		Title:     "Coat turnaround",
		Story:     "Three months in and the dandruff is gone.",
		Timeframe: "forever",
	})
	require.Error(t, err)
}

func TestStorySetLikedKeepsCounterInStep(t *testing.T) {
	deltas := []int{}
	storyRepo := &stubStoryRepo{
		findByIDFn: func(id string) (*model.SuccessStory, error) {
			return &model.SuccessStory{ID: id}, nil
		},
		incrementFn: func(id string, delta int) error {
			deltas = append(deltas, delta)
			return nil
		},
	}
	likeRepo := &stubLikeRepo{
		countFn: func(targetType, targetID string) (int64, error) {
			assert.Equal(t, model.TargetTypeStory, targetType)
			return 1, nil
		},
	}
	svc := NewStoryService(storyRepo, likeRepo)

	state, err := svc.SetLiked("user-1", "story-1", true)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(1), state.Likes)
	assert.Equal(t, []int{1}, deltas)
}

func TestStorySetLikedRepeatedLikeLeavesCounter(t *testing.T) {
	storyRepo := &stubStoryRepo{
		findByIDFn: func(id string) (*model.SuccessStory, error) {
			return &model.SuccessStory{ID: id}, nil
		},
		incrementFn: func(id string, delta int) error {
			t.Fatal("counter must not move for a repeated like")
			return nil
		},
	}
	likeRepo := &stubLikeRepo{
		findFn: func(userID, targetType, targetID string) (*model.Like, error) {
			return &model.Like{UserID: userID, TargetType: targetType, TargetID: targetID}, nil
		},
		countFn: func(targetType, targetID string) (int64, error) {
			return 1, nil
		},
	}
	svc := NewStoryService(storyRepo, likeRepo)

	state, err := svc.SetLiked("user-1", "story-1", true)
	require.NoError(t, err)
	assert.True(t, state.Liked)
}

func TestStoryCreateStampsAuthor(t *testing.T) {
	var created *model.SuccessStory
	storyRepo := &stubStoryRepo{
		createFn: func(story *model.SuccessStory) error {
			created = story
			return nil
		},
	}
	svc := NewStoryService(storyRepo, &stubLikeRepo{})

	story, err := svc.Create("user-1", CreateStoryInput{
		PetName:   "Mochi",
		PetType:   "cat",
		Title:     "Coat turnaround",
		Story:     "Three months in and the dandruff is gone.",
		Timeframe: model.TimeframeShort,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "user-1", story.UserID)
	assert.Equal(t, "user-1", story.UserName)
}
