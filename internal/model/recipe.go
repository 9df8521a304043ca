package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a community-submitted raw feeding recipe. Ingredients,
// instructions and photos are stored as JSON arrays in jsonb columns.
// Photos are opaque strings (URLs or base64 data URLs); no upload
// pipeline exists server-side.
type Recipe struct {
	ID           string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       string         `gorm:"type:varchar(64);not null;index" json:"userId"`
	UserName     string         `gorm:"type:varchar(100);not null" json:"userName"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Ingredients  string         `gorm:"type:jsonb" json:"-"`
	Instructions string         `gorm:"type:jsonb" json:"-"`
	Photos       string         `gorm:"type:jsonb" json:"-"`
	PrepTime     string         `gorm:"type:varchar(50)" json:"prepTime"`
	Servings     int            `gorm:"default:1" json:"servings"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Virtual engagement fields, calculated per request
	Likes    int64 `gorm:"-" json:"likes"`
	Saves    int64 `gorm:"-" json:"saves"`
	Liked    bool  `gorm:"-" json:"liked"`
	Saved    bool  `gorm:"-" json:"saved"`
	Comments int64 `gorm:"-" json:"comments"`
}

// BeforeCreate hook to generate UUID
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Recipe) TableName() string {
	return "recipes"
}

// GetIngredients returns Ingredients as a slice of strings
func (r *Recipe) GetIngredients() []string {
	return decodeStringList(r.Ingredients)
}

// SetIngredients sets Ingredients from a slice of strings
func (r *Recipe) SetIngredients(items []string) error {
	encoded, err := encodeStringList(items)
	if err != nil {
		return err
	}
	r.Ingredients = encoded
	return nil
}

// GetInstructions returns Instructions as a slice of strings
func (r *Recipe) GetInstructions() []string {
	return decodeStringList(r.Instructions)
}

// SetInstructions sets Instructions from a slice of strings
func (r *Recipe) SetInstructions(items []string) error {
	encoded, err := encodeStringList(items)
	if err != nil {
		return err
	}
	r.Instructions = encoded
	return nil
}

// GetPhotos returns Photos as a slice of strings
func (r *Recipe) GetPhotos() []string {
	return decodeStringList(r.Photos)
}

// SetPhotos sets Photos from a slice of strings
func (r *Recipe) SetPhotos(items []string) error {
	encoded, err := encodeStringList(items)
	if err != nil {
		return err
	}
	r.Photos = encoded
	return nil
}

// MarshalJSON exposes the jsonb list columns as arrays on the wire
func (r *Recipe) MarshalJSON() ([]byte, error) {
	type Alias Recipe
	aux := &struct {
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		Photos       []string `json:"photos"`
		*Alias
	}{
		Ingredients:  r.GetIngredients(),
		Instructions: r.GetInstructions(),
		Photos:       r.GetPhotos(),
		Alias:        (*Alias)(r),
	}
	return json.Marshal(aux)
}

func decodeStringList(raw string) []string {
	if raw == "" || raw == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}

func encodeStringList(items []string) (string, error) {
	if len(items) == 0 {
		// Empty JSON array rather than empty string for PostgreSQL jsonb
		return "[]", nil
	}
	bytes, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
