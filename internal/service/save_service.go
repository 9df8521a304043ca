package service

import (
	"errors"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type SaveState struct {
	Saved bool  `json:"saved"`
	Saves int64 `json:"saves"`
}

type SaveService interface {
	// SetSaved makes the stored state match the requested boolean.
	// Idempotent in the same way SetLiked is.
	SetSaved(userID, targetType, targetID string, saved bool) (*SaveState, error)
}

type saveService struct {
	saveRepo   repository.SaveRepository
	postRepo   repository.PostRepository
	recipeRepo repository.RecipeRepository
}

func NewSaveService(
	saveRepo repository.SaveRepository,
	postRepo repository.PostRepository,
	recipeRepo repository.RecipeRepository,
) SaveService {
	return &saveService{
		saveRepo:   saveRepo,
		postRepo:   postRepo,
		recipeRepo: recipeRepo,
	}
}

// SetSaved sets or clears the user's bookmark on a post or recipe
func (s *saveService) SetSaved(userID, targetType, targetID string, saved bool) (*SaveState, error) {
	if !model.ValidSaveTarget(targetType) {
		return nil, ErrBadTarget
	}

	if err := s.targetExists(targetType, targetID); err != nil {
		return nil, err
	}

	existing, _ := s.saveRepo.FindByUserAndTarget(userID, targetType, targetID)

	if saved && existing == nil {
		save := &model.Save{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
		}
		if err := s.saveRepo.Create(save); err != nil {
			return nil, errors.New("failed to save bookmark")
		}
	}

	if !saved && existing != nil {
		if err := s.saveRepo.DeleteByUserAndTarget(userID, targetType, targetID); err != nil {
			return nil, errors.New("failed to remove bookmark")
		}
	}

	count, err := s.saveRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, errors.New("failed to count bookmarks")
	}

	return &SaveState{Saved: saved, Saves: count}, nil
}

func (s *saveService) targetExists(targetType, targetID string) error {
	switch targetType {
	case model.TargetTypePost:
		if _, err := s.postRepo.FindByID(targetID); err != nil {
			return ErrNotFound
		}
	case model.TargetTypeRecipe:
		if _, err := s.recipeRepo.FindByID(targetID); err != nil {
			return ErrNotFound
		}
	default:
		return ErrBadTarget
	}
	return nil
}
