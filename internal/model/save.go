package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Save marks content a user bookmarked. Unlike likes there is no counter
// surfaced per target; the state is binary per user.
type Save struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:varchar(64);not null;index:idx_save_user_target,unique" json:"userId"`
	TargetType string    `gorm:"type:varchar(20);not null;index:idx_save_user_target,unique" json:"targetType"` // post, recipe
	TargetID   string    `gorm:"type:uuid;not null;index:idx_save_user_target,unique" json:"targetId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate hook to generate UUID
func (s *Save) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Save) TableName() string {
	return "saves"
}
