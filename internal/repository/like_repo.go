package repository

import (
	"fmt"
	"time"

	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *model.Like) error
	FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error)
	DeleteByUserAndTarget(userID, targetType, targetID string) error
	CountByTarget(targetType, targetID string) (int64, error)
	CountByTargets(targetType string, targetIDs []string) (map[string]int64, error)
	FindUserLikedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error)
}

type likeRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	likeCountCachePrefix = "like:count:"
	likeCacheExpiration  = 10 * time.Minute
)

func NewLikeRepository(db *gorm.DB, redis *util.RedisClient) LikeRepository {
	return &likeRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a like and invalidates the target's count cache
func (r *likeRepository) Create(like *model.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		return err
	}

	if r.redis != nil {
		r.invalidateCountCache(like.TargetType, like.TargetID)
	}

	return nil
}

// FindByUserAndTarget finds a like by user and target (to check if user already liked)
func (r *likeRepository) FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// DeleteByUserAndTarget removes a user's like on a target and invalidates
// the count cache. Removing a like that does not exist is not an error.
func (r *likeRepository) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	result := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).Delete(&model.Like{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 && r.redis != nil {
		r.invalidateCountCache(targetType, targetID)
	}

	return nil
}

// CountByTarget counts likes for a target, serving from cache when possible
func (r *likeRepository) CountByTarget(targetType, targetID string) (int64, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", likeCountCachePrefix, targetType, targetID)
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
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if r.redis != nil {
		r.redis.Set(cacheKey, fmt.Sprintf("%d", count), likeCacheExpiration)
	}

	return count, nil
}

// CountByTargets counts likes for multiple targets in one query
func (r *likeRepository) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	if len(targetIDs) == 0 {
		return map[string]int64{}, nil
	}
	var results []struct {
		TargetID string
		Count    int64
	}
	err := r.db.Model(&model.Like{}).
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
	// Ensure all IDs have an entry
	for _, id := range targetIDs {
		if _, ok := m[id]; !ok {
			m[id] = 0
		}
	}
	return m, nil
}

// FindUserLikedTargets returns which of the targets the user has liked
func (r *likeRepository) FindUserLikedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	if len(targetIDs) == 0 {
		return map[string]bool{}, nil
	}
	var likes []model.Like
	err := r.db.Select("target_id").
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType, targetIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]bool)
	for _, like := range likes {
		m[like.TargetID] = true
	}
	return m, nil
}

func (r *likeRepository) invalidateCountCache(targetType, targetID string) {
	if r.redis == nil {
		return
	}
	r.redis.Delete(fmt.Sprintf("%s%s:%s", likeCountCachePrefix, targetType, targetID))
}
