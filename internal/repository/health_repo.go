package repository

import (
	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(record *model.HealthRecord) error
	FindByUser(userID string) ([]*model.HealthRecord, error)
	FindByUserAndPet(userID, petName string) ([]*model.HealthRecord, error)
}

type healthRecordRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

func NewHealthRecordRepository(db *gorm.DB, redis *util.RedisClient) HealthRecordRepository {
	return &healthRecordRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a health record
func (r *healthRecordRepository) Create(record *model.HealthRecord) error {
	return r.db.Create(record).Error
}

// FindByUser returns all of a user's records, most recent first
func (r *healthRecordRepository) FindByUser(userID string) ([]*model.HealthRecord, error) {
	var records []*model.HealthRecord
	err := r.db.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindByUserAndPet returns one pet's records, most recent first
func (r *healthRecordRepository) FindByUserAndPet(userID, petName string) ([]*model.HealthRecord, error) {
	var records []*model.HealthRecord
	err := r.db.
		Where("user_id = ? AND pet_name = ?", userID, petName).
		Order("recorded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
