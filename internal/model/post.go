package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a freeform community post (feeding updates, questions, wins).
type Post struct {
	ID        string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	UserName  string         `gorm:"type:varchar(100);not null" json:"userName"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Photos    string         `gorm:"type:jsonb" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Virtual engagement fields, calculated per request
	Likes    int64 `gorm:"-" json:"likes"`
	Liked    bool  `gorm:"-" json:"liked"`
	Saved    bool  `gorm:"-" json:"saved"`
	Comments int64 `gorm:"-" json:"comments"`
}

// BeforeCreate hook to generate UUID
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Post) TableName() string {
	return "posts"
}

// GetPhotos returns Photos as a slice of strings
func (p *Post) GetPhotos() []string {
	return decodeStringList(p.Photos)
}

// SetPhotos sets Photos from a slice of strings
func (p *Post) SetPhotos(items []string) error {
	encoded, err := encodeStringList(items)
	if err != nil {
		return err
	}
	p.Photos = encoded
	return nil
}

// MarshalJSON exposes the jsonb photo column as an array on the wire
func (p *Post) MarshalJSON() ([]byte, error) {
	type Alias Post
	aux := &struct {
		Photos []string `json:"photos"`
		*Alias
	}{
		Photos: p.GetPhotos(),
		Alias:  (*Alias)(p),
	}
	return json.Marshal(aux)
}
