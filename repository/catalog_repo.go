package repository

import (
	"backend/models"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) FindAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Products").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) FindByIDWithProducts(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Products.Product").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}
