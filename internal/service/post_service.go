package service

import (
	"errors"
	"strings"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type CreatePostInput struct {
	Content string   `json:"content" binding:"required"`
	Photos  []string `json:"photos"`
}

type PostService interface {
	Create(userID string, input CreatePostInput) (*model.Post, error)
	GetByID(viewerID, id string) (*model.Post, error)
	List(viewerID string, limit, offset int) ([]*model.Post, int64, error)
	Delete(userID, id string) error
}

type postService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	saveRepo    repository.SaveRepository
	commentRepo repository.CommentRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	saveRepo repository.SaveRepository,
	commentRepo repository.CommentRepository,
) PostService {
	return &postService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		saveRepo:    saveRepo,
		commentRepo: commentRepo,
	}
}

// Create adds a new community post
func (s *postService) Create(userID string, input CreatePostInput) (*model.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.New("content is required")
	}

	post := &model.Post{
		UserID:   userID,
		UserName: userID,
		Content:  content,
	}
	if err := post.SetPhotos(input.Photos); err != nil {
		return nil, errors.New("invalid photos")
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, errors.New("failed to create post")
	}
	return post, nil
}

// GetByID fetches a single post with engagement fields for the viewer
func (s *postService) GetByID(viewerID, id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.enrich(viewerID, []*model.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// List fetches posts newest first with engagement fields for the viewer
func (s *postService) List(viewerID string, limit, offset int) ([]*model.Post, int64, error) {
	posts, total, err := s.postRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, errors.New("failed to fetch posts")
	}
	if err := s.enrich(viewerID, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Delete removes a post; only the post owner may delete
func (s *postService) Delete(userID, id string) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}
	if post.UserID != userID {
		return ErrNotOwner
	}
	if err := s.postRepo.Delete(id); err != nil {
		return errors.New("failed to delete post")
	}
	return nil
}

func (s *postService) enrich(viewerID string, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	likeCounts, err := s.likeRepo.CountByTargets(model.TargetTypePost, ids)
	if err != nil {
		return errors.New("failed to count likes")
	}
	commentCounts, err := s.commentRepo.CountByTargets(model.TargetTypePost, ids)
	if err != nil {
		return errors.New("failed to count comments")
	}

	liked := map[string]bool{}
	saved := map[string]bool{}
	if viewerID != "" {
		liked, err = s.likeRepo.FindUserLikedTargets(viewerID, model.TargetTypePost, ids)
		if err != nil {
			return errors.New("failed to resolve liked posts")
		}
		saved, err = s.saveRepo.FindUserSavedTargets(viewerID, model.TargetTypePost, ids)
		if err != nil {
			return errors.New("failed to resolve saved posts")
		}
	}

	for _, p := range posts {
		p.Likes = likeCounts[p.ID]
		p.Comments = commentCounts[p.ID]
		p.Liked = liked[p.ID]
		p.Saved = saved[p.ID]
	}
	return nil
}
