package service

import (
	"errors"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type CreateStoryInput struct {
	PetName            string `json:"petName" binding:"required"`
	PetType            string `json:"petType" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Story              string `json:"story" binding:"required"`
	TransformationType string `json:"transformationType"`
	Timeframe          string `json:"timeframe"`
	BeforePhoto        string `json:"beforePhoto"`
	AfterPhoto         string `json:"afterPhoto"`
}

// StoryFilter mirrors the gallery query string. Zero values and "all"
// mean no filtering on that dimension.
type StoryFilter struct {
	PetType            string
	TransformationType string
	Timeframe          string
	SortBy             string
}

type StoryService interface {
	Create(userID string, input CreateStoryInput) (*model.SuccessStory, error)
	List(filter StoryFilter) ([]*model.SuccessStory, error)
	// SetLiked tracks per-user story likes and keeps the story's
	// denormalized counter in step, so the popular sort stays cheap.
	SetLiked(userID, storyID string, liked bool) (*LikeState, error)
}

type storyService struct {
	storyRepo repository.StoryRepository
	likeRepo  repository.LikeRepository
}

func NewStoryService(storyRepo repository.StoryRepository, likeRepo repository.LikeRepository) StoryService {
	return &storyService{
		storyRepo: storyRepo,
		likeRepo:  likeRepo,
	}
}

var validTimeframes = map[string]bool{
	model.TimeframeShort:  true,
	model.TimeframeMedium: true,
	model.TimeframeLong:   true,
	model.TimeframeYear:   true,
}

// Create adds a new transformation story
func (s *storyService) Create(userID string, input CreateStoryInput) (*model.SuccessStory, error) {
	if input.Timeframe != "" && !validTimeframes[input.Timeframe] {
		return nil, errors.New("invalid timeframe")
	}

	story := &model.SuccessStory{
		UserID:             userID,
		UserName:           userID,
		PetName:            input.PetName,
		PetType:            input.PetType,
		Title:              input.Title,
		Story:              input.Story,
		TransformationType: input.TransformationType,
		Timeframe:          input.Timeframe,
		BeforePhoto:        input.BeforePhoto,
		AfterPhoto:         input.AfterPhoto,
	}
	if err := s.storyRepo.Create(story); err != nil {
		return nil, errors.New("failed to create story")
	}
	return story, nil
}

// List fetches gallery stories matching the filter
func (s *storyService) List(filter StoryFilter) ([]*model.SuccessStory, error) {
	query := repository.StoryQuery{
		PetType:            filter.PetType,
		TransformationType: filter.TransformationType,
		Timeframe:          filter.Timeframe,
		SortBy:             filter.SortBy,
	}

	// "all" from the filter bar means no constraint
	if query.PetType == "all" {
		query.PetType = ""
	}
	if query.TransformationType == "all" {
		query.TransformationType = ""
	}
	if query.Timeframe == "all" {
		query.Timeframe = ""
	}
	if query.Timeframe != "" && !validTimeframes[query.Timeframe] {
		return nil, errors.New("invalid timeframe")
	}

	switch query.SortBy {
	case "", model.SortRecent:
		query.SortBy = model.SortRecent
	case model.SortPopular:
	default:
		return nil, errors.New("invalid sort order")
	}

	stories, err := s.storyRepo.Find(query)
	if err != nil {
		return nil, errors.New("failed to fetch stories")
	}
	return stories, nil
}

// SetLiked sets or clears the user's like on a story, idempotently
func (s *storyService) SetLiked(userID, storyID string, liked bool) (*LikeState, error) {
	if _, err := s.storyRepo.FindByID(storyID); err != nil {
		return nil, ErrNotFound
	}

	existing, _ := s.likeRepo.FindByUserAndTarget(userID, model.TargetTypeStory, storyID)

	if liked && existing == nil {
		like := &model.Like{
			UserID:     userID,
			TargetType: model.TargetTypeStory,
			TargetID:   storyID,
		}
		if err := s.likeRepo.Create(like); err != nil {
			return nil, errors.New("failed to save like")
		}
		if err := s.storyRepo.IncrementLikes(storyID, 1); err != nil {
			return nil, errors.New("failed to update like count")
		}
	}

	if !liked && existing != nil {
		if err := s.likeRepo.DeleteByUserAndTarget(userID, model.TargetTypeStory, storyID); err != nil {
			return nil, errors.New("failed to remove like")
		}
		if err := s.storyRepo.IncrementLikes(storyID, -1); err != nil {
			return nil, errors.New("failed to update like count")
		}
	}

	count, err := s.likeRepo.CountByTarget(model.TargetTypeStory, storyID)
	if err != nil {
		return nil, errors.New("failed to count likes")
	}

	return &LikeState{Liked: liked, Likes: count}, nil
}
