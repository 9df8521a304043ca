package repository

import (
	"fmt"
	"time"

	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id string) (*model.Comment, error)
	FindByTarget(targetType, targetID string) ([]*model.Comment, error)
	CountByTarget(targetType, targetID string) (int64, error)
	CountByTargets(targetType string, targetIDs []string) (map[string]int64, error)
	Delete(id string) error
}

type commentRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	commentCountCachePrefix = "comment:count:"
	commentCacheExpiration  = 15 * time.Minute
)

func NewCommentRepository(db *gorm.DB, redis *util.RedisClient) CommentRepository {
	return &commentRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a comment and invalidates the target's count cache
func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}

	if r.redis != nil {
		r.redis.Delete(fmt.Sprintf("%s%s:%s", commentCountCachePrefix, comment.TargetType, comment.TargetID))
	}

	return nil
}

// FindByID finds a comment by ID
func (r *commentRepository) FindByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByTarget returns the full comment tree for a target: top-level
// comments newest first, each with its replies in conversation order.
func (r *commentRepository) FindByTarget(targetType, targetID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("target_type = ? AND target_id = ? AND parent_id IS NULL", targetType, targetID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByTarget counts all comments (including replies) for a target
func (r *commentRepository) CountByTarget(targetType, targetID string) (int64, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", commentCountCachePrefix, targetType, targetID)
	if r.redis != nil {
		cached, err := r.redis.Get(cacheKey)
		if err == nil {
			var count int64
			if _, err := fmt.Sscanf(cached, "%d", &count); err == nil {
				return count, nil
			}
		}
	}

	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if r.redis != nil {
		r.redis.Set(cacheKey, fmt.Sprintf("%d", count), commentCacheExpiration)
	}

	return count, nil
}

// CountByTargets counts comments for multiple targets in one query
func (r *commentRepository) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	if len(targetIDs) == 0 {
		return map[string]int64{}, nil
	}
	var results []struct {
		TargetID string
		Count    int64
	}
	err := r.db.Model(&model.Comment{}).
		Select("target_id, count(*) as count").
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Group("target_id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]int64)
	for _, row := range results {
		m[row.TargetID] = row.Count
	}
	for _, id := range targetIDs {
		if _, ok := m[id]; !ok {
			m[id] = 0
		}
	}
	return m, nil
}

// Delete soft-deletes a comment and invalidates the count cache
func (r *commentRepository) Delete(id string) error {
	var comment model.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return err
	}

	if err := r.db.Delete(&comment).Error; err != nil {
		return err
	}

	if r.redis != nil {
		r.redis.Delete(fmt.Sprintf("%s%s:%s", commentCountCachePrefix, comment.TargetType, comment.TargetID))
	}

	return nil
}
