package service

import (
	"errors"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

// LikeState is the server's view of one user's like on one target.
type LikeState struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type LikeService interface {
	// SetLiked makes the stored state match the requested boolean.
	// Setting an already-set state is a no-op, so retried or duplicated
	// toggles cannot double-count.
	SetLiked(userID, targetType, targetID string, liked bool) (*LikeState, error)
	GetLikeCount(targetType, targetID string) (int64, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	recipeRepo  repository.RecipeRepository
	commentRepo repository.CommentRepository
	engagement  EngagementService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	recipeRepo repository.RecipeRepository,
	commentRepo repository.CommentRepository,
	engagement EngagementService,
) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		recipeRepo:  recipeRepo,
		commentRepo: commentRepo,
		engagement:  engagement,
	}
}

// SetLiked sets or clears the user's like on a target
func (s *likeService) SetLiked(userID, targetType, targetID string, liked bool) (*LikeState, error) {
	if !model.ValidLikeTarget(targetType) {
		return nil, ErrBadTarget
	}

	ownerID, err := s.targetOwner(targetType, targetID)
	if err != nil {
		return nil, err
	}

	existing, _ := s.likeRepo.FindByUserAndTarget(userID, targetType, targetID)

	if liked && existing == nil {
		like := &model.Like{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
		}
		if err := s.likeRepo.Create(like); err != nil {
			return nil, errors.New("failed to save like")
		}
		if s.engagement != nil {
			s.engagement.RecordLike(userID, ownerID, targetType, targetID)
		}
	}

	if !liked && existing != nil {
		if err := s.likeRepo.DeleteByUserAndTarget(userID, targetType, targetID); err != nil {
			return nil, errors.New("failed to remove like")
		}
	}

	count, err := s.likeRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, errors.New("failed to count likes")
	}

	return &LikeState{Liked: liked, Likes: count}, nil
}

// GetLikeCount returns the like count for a target
func (s *likeService) GetLikeCount(targetType, targetID string) (int64, error) {
	if !model.ValidLikeTarget(targetType) {
		return 0, ErrBadTarget
	}
	return s.likeRepo.CountByTarget(targetType, targetID)
}

// targetOwner validates the target exists and returns its owner's id.
func (s *likeService) targetOwner(targetType, targetID string) (string, error) {
	switch targetType {
	case model.TargetTypePost:
		post, err := s.postRepo.FindByID(targetID)
		if err != nil {
			return "", ErrNotFound
		}
		return post.UserID, nil
	case model.TargetTypeRecipe:
		recipe, err := s.recipeRepo.FindByID(targetID)
		if err != nil {
			return "", ErrNotFound
		}
		return recipe.UserID, nil
	case model.TargetTypeComment:
		comment, err := s.commentRepo.FindByID(targetID)
		if err != nil {
			return "", ErrNotFound
		}
		return comment.UserID, nil
	default:
		return "", ErrBadTarget
	}
}
