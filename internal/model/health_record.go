package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record types tracked per pet.
const (
	RecordTypeWeight = "weight"
	RecordTypeVet    = "vet"
	RecordTypeNote   = "note"
)

// HealthRecord is one entry in a pet's health log (weight check, vet
// visit, freeform note).
type HealthRecord struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	PetName    string    `gorm:"type:varchar(100);not null;index" json:"petName"`
	RecordType string    `gorm:"type:varchar(20);not null" json:"recordType"` // weight, vet, note
	Value      string    `gorm:"type:varchar(100)" json:"value,omitempty"`
	Unit       string    `gorm:"type:varchar(20)" json:"unit,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	RecordedAt time.Time `gorm:"not null" json:"recordedAt"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate hook to generate UUID
func (h *HealthRecord) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (HealthRecord) TableName() string {
	return "health_records"
}
