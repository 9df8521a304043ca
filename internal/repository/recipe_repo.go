package repository

import (
	"rawtails/internal/model"
	"rawtails/internal/util"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *model.Recipe) error
	FindByID(id string) (*model.Recipe, error)
	FindAll(limit, offset int) ([]*model.Recipe, int64, error)
	FindByUserID(userID string, limit, offset int) ([]*model.Recipe, error)
	Update(recipe *model.Recipe) error
	Delete(id string) error
}

type recipeRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

func NewRecipeRepository(db *gorm.DB, redis *util.RedisClient) RecipeRepository {
	return &recipeRepository{
		db:    db,
		redis: redis,
	}
}

// Create inserts a recipe
func (r *recipeRepository) Create(recipe *model.Recipe) error {
	return r.db.Create(recipe).Error
}

// FindByID finds a recipe by ID
func (r *recipeRepository) FindByID(id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Where("id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindAll returns recipes newest first with the total count
func (r *recipeRepository) FindAll(limit, offset int) ([]*model.Recipe, int64, error) {
	var total int64
	if err := r.db.Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*model.Recipe
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// FindByUserID returns one user's recipes newest first
func (r *recipeRepository) FindByUserID(userID string, limit, offset int) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update saves recipe changes
func (r *recipeRepository) Update(recipe *model.Recipe) error {
	return r.db.Save(recipe).Error
}

// Delete soft-deletes a recipe
func (r *recipeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Recipe{}).Error
}
