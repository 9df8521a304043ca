package service

import (
	"errors"
	"strings"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type CreateCommentInput struct {
	Content         string  `json:"content" binding:"required"`
	ParentCommentID *string `json:"parentCommentId"`
}

type CommentService interface {
	Create(userID, targetType, targetID string, input CreateCommentInput) (*model.Comment, error)
	// ListByTarget returns top-level comments newest first, each carrying
	// its replies oldest first, with like counts resolved for the viewer.
	ListByTarget(viewerID, targetType, targetID string) ([]*model.Comment, int64, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	recipeRepo  repository.RecipeRepository
	engagement  EngagementService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	recipeRepo repository.RecipeRepository,
	engagement EngagementService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		recipeRepo:  recipeRepo,
		engagement:  engagement,
	}
}

// Create adds a comment or a reply to a post or recipe
func (s *commentService) Create(userID, targetType, targetID string, input CreateCommentInput) (*model.Comment, error) {
	if targetType != model.TargetTypePost && targetType != model.TargetTypeRecipe {
		return nil, ErrBadTarget
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.New("content is required")
	}

	ownerID, err := s.targetOwner(targetType, targetID)
	if err != nil {
		return nil, err
	}

	notifyUser := ownerID
	if input.ParentCommentID != nil {
		parent, err := s.commentRepo.FindByID(*input.ParentCommentID)
		if err != nil {
			return nil, ErrNotFound
		}
		if parent.TargetType != targetType || parent.TargetID != targetID {
			return nil, errors.New("parent comment belongs to a different target")
		}
		if parent.ParentID != nil {
			return nil, ErrNestedReply
		}
		notifyUser = parent.UserID
	}

	comment := &model.Comment{
		TargetType: targetType,
		TargetID:   targetID,
		UserID:     userID,
		// Display name comes from the identity header until a real user
		// directory exists.
		UserName: userID,
		ParentID: input.ParentCommentID,
		Content:  content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, errors.New("failed to create comment")
	}

	if s.engagement != nil {
		isReply := input.ParentCommentID != nil
		s.engagement.RecordComment(userID, notifyUser, targetType, targetID, comment.ID, isReply)
	}

	return comment, nil
}

// ListByTarget fetches the comment thread for a post or recipe
func (s *commentService) ListByTarget(viewerID, targetType, targetID string) ([]*model.Comment, int64, error) {
	if targetType != model.TargetTypePost && targetType != model.TargetTypeRecipe {
		return nil, 0, ErrBadTarget
	}

	comments, err := s.commentRepo.FindByTarget(targetType, targetID)
	if err != nil {
		return nil, 0, errors.New("failed to fetch comments")
	}

	total, err := s.commentRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, 0, errors.New("failed to count comments")
	}

	if err := s.enrichLikes(viewerID, comments); err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// enrichLikes fills the Likes and Liked virtual fields for every comment
// in the thread, replies included, using two batch queries.
func (s *commentService) enrichLikes(viewerID string, comments []*model.Comment) error {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
		for i := range c.Replies {
			ids = append(ids, c.Replies[i].ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	counts, err := s.likeRepo.CountByTargets(model.TargetTypeComment, ids)
	if err != nil {
		return errors.New("failed to count comment likes")
	}

	liked := map[string]bool{}
	if viewerID != "" {
		liked, err = s.likeRepo.FindUserLikedTargets(viewerID, model.TargetTypeComment, ids)
		if err != nil {
			return errors.New("failed to resolve liked comments")
		}
	}

	for _, c := range comments {
		c.Likes = counts[c.ID]
		c.Liked = liked[c.ID]
		for i := range c.Replies {
			c.Replies[i].Likes = counts[c.Replies[i].ID]
			c.Replies[i].Liked = liked[c.Replies[i].ID]
		}
	}
	return nil
}

func (s *commentService) targetOwner(targetType, targetID string) (string, error) {
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
	}
	return "", ErrBadTarget
}
