package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Target types for polymorphic likes and saves
const (
	TargetTypePost    = "post"
	TargetTypeRecipe  = "recipe"
	TargetTypeComment = "comment"

	// TargetTypeStory is reachable only through the gallery's own like
	// route, not the community engagement routes.
	TargetTypeStory = "story"
)

// ValidLikeTarget reports whether targetType can be liked.
func ValidLikeTarget(targetType string) bool {
	return targetType == TargetTypePost || targetType == TargetTypeRecipe || targetType == TargetTypeComment
}

// ValidSaveTarget reports whether targetType can be saved. Comments are
// likeable but not saveable.
func ValidSaveTarget(targetType string) bool {
	return targetType == TargetTypePost || targetType == TargetTypeRecipe
}

type Like struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:varchar(64);not null;index:idx_like_user_target,unique" json:"userId"`
	TargetType string    `gorm:"type:varchar(20);not null;index:idx_like_user_target,unique" json:"targetType"` // post, recipe, comment
	TargetID   string    `gorm:"type:uuid;not null;index:idx_like_user_target,unique" json:"targetId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate hook to generate UUID
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Like) TableName() string {
	return "likes"
}
