package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timeframe buckets offered by the gallery filter.
const (
	TimeframeShort  = "1-3months"
	TimeframeMedium = "3-6months"
	TimeframeLong   = "6-12months"
	TimeframeYear   = "1year+"
)

// Sort orders for the gallery.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

// SuccessStory is a before/after transformation entry in the gallery.
type SuccessStory struct {
	ID                 string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	UserName           string         `gorm:"type:varchar(100);not null" json:"userName"`
	PetName            string         `gorm:"type:varchar(100);not null" json:"petName"`
	PetType            string         `gorm:"type:varchar(20);not null;index" json:"petType"` // dog, cat
	Title              string         `gorm:"type:varchar(255);not null" json:"title"`
	Story              string         `gorm:"type:text;not null" json:"story"`
	TransformationType string         `gorm:"type:varchar(50);index" json:"transformationType"` // coat, weight, energy, allergies, digestion
	Timeframe          string         `gorm:"type:varchar(20)" json:"timeframe"`
	BeforePhoto        string         `gorm:"type:text" json:"beforePhoto,omitempty"`
	AfterPhoto         string         `gorm:"type:text" json:"afterPhoto,omitempty"`
	Likes              int64          `gorm:"default:0" json:"likes"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook to generate UUID
func (s *SuccessStory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (SuccessStory) TableName() string {
	return "success_stories"
}
