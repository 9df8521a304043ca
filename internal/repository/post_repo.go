package repository

import (
	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id string) (*model.Post, error)
	FindAll(limit, offset int) ([]*model.Post, int64, error)
	Delete(id string) error
}

type postRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

func NewPostRepository(db *gorm.DB, redis *util.RedisClient) PostRepository {
	return &postRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a post
func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *postRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll returns posts newest first with the total count
func (r *postRepository) FindAll(limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Delete soft-deletes a post
func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Post{}).Error
}
