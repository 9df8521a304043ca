package repository

import (
	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

// StoryQuery narrows and orders the success story gallery. Empty fields
// apply no filter.
type StoryQuery struct {
	PetType            string
	TransformationType string
	Timeframe          string
	SortBy             string
}

type StoryRepository interface {
	Create(story *model.SuccessStory) error
	FindByID(id string) (*model.SuccessStory, error)
	Find(query StoryQuery) ([]*model.SuccessStory, error)
	IncrementLikes(id string, delta int) error
}

type storyRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

func NewStoryRepository(db *gorm.DB, redis *util.RedisClient) StoryRepository {
	return &storyRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a success story
func (r *storyRepository) Create(story *model.SuccessStory) error {
	return r.db.Create(story).Error
}

// FindByID finds a story by ID
func (r *storyRepository) FindByID(id string) (*model.SuccessStory, error) {
	var story model.SuccessStory
	err := r.db.Where("id = ?", id).First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// Find returns stories matching the query, sorted per SortBy
func (r *storyRepository) Find(query StoryQuery) ([]*model.SuccessStory, error) {
	db := r.db.Model(&model.SuccessStory{})

	if query.PetType != "" {
		db = db.Where("pet_type = ?", query.PetType)
	}
	if query.TransformationType != "" {
		db = db.Where("transformation_type = ?", query.TransformationType)
	}
	if query.Timeframe != "" {
		db = db.Where("timeframe = ?", query.Timeframe)
	}

	switch query.SortBy {
	case model.SortPopular:
		db = db.Order("likes DESC, created_at DESC")
	default:
		db = db.Order("created_at DESC")
	}

	var stories []*model.SuccessStory
	if err := db.Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// IncrementLikes adjusts the story's denormalized like counter
func (r *storyRepository) IncrementLikes(id string, delta int) error {
	return r.db.Model(&model.SuccessStory{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
}
