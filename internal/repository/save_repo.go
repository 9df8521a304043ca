package repository

import (
	"fmt"
	"time"

	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type SaveRepository interface {
	Create(save *model.Save) error
	FindByUserAndTarget(userID, targetType, targetID string) (*model.Save, error)
	DeleteByUserAndTarget(userID, targetType, targetID string) error
	CountByTarget(targetType, targetID string) (int64, error)
	CountByTargets(targetType string, targetIDs []string) (map[string]int64, error)
	FindUserSavedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error)
}

type saveRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	saveCountCachePrefix = "save:count:"
	saveCacheExpiration  = 10 * time.Minute
)

func NewSaveRepository(db *gorm.DB, redis *util.RedisClient) SaveRepository {
	return &saveRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a save and invalidates the target's count cache
func (r *saveRepository) Create(save *model.Save) error {
	if err := r.db.Create(save).Error; err != nil {
		return err
	}

	if r.redis != nil {
		r.redis.Delete(fmt.Sprintf("%s%s:%s", saveCountCachePrefix, save.TargetType, save.TargetID))
	}

	return nil
}

// FindByUserAndTarget finds a save by user and target
func (r *saveRepository) FindByUserAndTarget(userID, targetType, targetID string) (*model.Save, error) {
	var save model.Save
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).First(&save).Error
	if err != nil {
		return nil, err
	}
	return &save, nil
}

// DeleteByUserAndTarget removes a user's save on a target. Removing a
// save that does not exist is not an error.
func (r *saveRepository) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	result := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).Delete(&model.Save{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 && r.redis != nil {
		r.redis.Delete(fmt.Sprintf("%s%s:%s", saveCountCachePrefix, targetType, targetID))
	}

	return nil
}

// CountByTarget counts saves for a target, serving from cache when possible
func (r *saveRepository) CountByTarget(targetType, targetID string) (int64, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", saveCountCachePrefix, targetType, targetID)
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
	err := r.db.Model(&model.Save{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if r.redis != nil {
		r.redis.Set(cacheKey, fmt.Sprintf("%d", count), saveCacheExpiration)
	}

	return count, nil
}

// CountByTargets counts saves for many targets in one query
func (r *saveRepository) CountByTargets(targetType string, targetIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID string
		Count    int64
	}
	err := r.db.Model(&model.Save{}).
		Select("target_id, count(*) as count").
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

// FindUserSavedTargets returns which of the targets the user has saved
func (r *saveRepository) FindUserSavedTargets(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	if len(targetIDs) == 0 {
		return map[string]bool{}, nil
	}
	var saves []model.Save
	err := r.db.Select("target_id").
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType, targetIDs).
		Find(&saves).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]bool)
	for _, save := range saves {
		m[save.TargetID] = true
	}
	return m, nil
}
