package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeReply   = "reply"
)

// Notification records an engagement event for a content owner.
type Notification struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:varchar(64);not null;index" json:"userId"` // receiver
	ActorID    string    `gorm:"type:varchar(64);not null" json:"actorId"`      // who engaged
	Type       string    `gorm:"type:varchar(20);not null" json:"type"`         // like, comment, reply
	TargetType string    `gorm:"type:varchar(20);not null" json:"targetType"`
	TargetID   string    `gorm:"type:uuid;not null" json:"targetId"`
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"isRead"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate hook to generate UUID
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Notification) TableName() string {
	return "notifications"
}
