package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to a post or recipe. Replies nest exactly one level:
// a comment with a ParentID can never itself be a parent.
type Comment struct {
	ID         string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TargetType string         `gorm:"type:varchar(20);not null;index:idx_comment_target" json:"targetType"` // post, recipe
	TargetID   string         `gorm:"type:uuid;not null;index:idx_comment_target" json:"targetId"`
	UserID     string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	UserName   string         `gorm:"type:varchar(100);not null" json:"userName"`
	ParentID   *string        `gorm:"type:uuid;index" json:"parentCommentId,omitempty"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Replies []Comment `gorm:"foreignKey:ParentID;references:ID" json:"replies,omitempty"`

	// Virtual fields, calculated per request from the likes table
	Likes int64 `gorm:"-" json:"likes"`
	Liked bool  `gorm:"-" json:"liked"`
}

// BeforeCreate hook to generate UUID
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Comment) TableName() string {
	return "comments"
}
