package service

import (
	"errors"
	"time"

	"rawtails/internal/model"
	"rawtails/internal/repository"
)

type AddHealthRecordInput struct {
	PetName    string     `json:"petName" binding:"required"`
	RecordType string     `json:"recordType" binding:"required"`
	Value      string     `json:"value"`
	Unit       string     `json:"unit"`
	Notes      string     `json:"notes"`
	RecordedAt *time.Time `json:"recordedAt"`
}

type HealthService interface {
	Add(userID string, input AddHealthRecordInput) (*model.HealthRecord, error)
	List(userID, petName string) ([]*model.HealthRecord, error)
}

type healthService struct {
	healthRepo repository.HealthRecordRepository
}

func NewHealthService(healthRepo repository.HealthRecordRepository) HealthService {
	return &healthService{healthRepo: healthRepo}
}

// Add records a new health log entry for one of the user's pets
func (s *healthService) Add(userID string, input AddHealthRecordInput) (*model.HealthRecord, error) {
	switch input.RecordType {
	case model.RecordTypeWeight, model.RecordTypeVet, model.RecordTypeNote:
	default:
		return nil, errors.New("invalid record type")
	}
	if input.RecordType == model.RecordTypeWeight && input.Value == "" {
		return nil, errors.New("value is required for weight records")
	}

	recordedAt := time.Now()
	if input.RecordedAt != nil {
		recordedAt = *input.RecordedAt
	}

	record := &model.HealthRecord{
		UserID:     userID,
		PetName:    input.PetName,
		RecordType: input.RecordType,
		Value:      input.Value,
		Unit:       input.Unit,
		Notes:      input.Notes,
		RecordedAt: recordedAt,
	}
	if err := s.healthRepo.Create(record); err != nil {
		return nil, errors.New("failed to create health record")
	}
	return record, nil
}

// List fetches the user's health log, optionally narrowed to one pet
func (s *healthService) List(userID, petName string) ([]*model.HealthRecord, error) {
	if petName != "" {
		return s.healthRepo.FindByUserAndPet(userID, petName)
	}
	return s.healthRepo.FindByUser(userID)
}
