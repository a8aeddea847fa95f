package repository

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type planRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(plan *models.DailyDietPlan) error {
	return r.db.Create(plan).Error
}

func (r *planRepo) FindByID(id uint) (*models.DailyDietPlan, error) {
	var plan models.DailyDietPlan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) FindByIDWithMeals(id uint) (*models.DailyDietPlan, error) {
	var plan models.DailyDietPlan
	err := r.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.position ASC") }).
		Preload("Meals.Recipes").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) FindByUserCreatedBetween(userID uint, from, to time.Time) ([]models.DailyDietPlan, error) {
	var plans []models.DailyDietPlan
	err := r.db.
		Preload("Meals.Recipes").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Find(&plans).Error
	return plans, err
}

func (r *planRepo) Update(plan *models.DailyDietPlan) error {
	return r.db.Save(plan).Error
}

func (r *planRepo) CreateMeal(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *planRepo) UpdateMeal(meal *models.Meal) error {
	return r.db.Save(meal).Error
}

func (r *planRepo) FindMealsByPlanID(planID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Preload("Recipes").
		Where("plan_id = ?", planID).
		Order("position ASC").
		Find(&meals).Error
	return meals, err
}

func (r *planRepo) CreateMealRecipe(link *models.MealRecipe) error {
	return r.db.Create(link).Error
}

func (r *planRepo) UpdateMealRecipe(link *models.MealRecipe) error {
	return r.db.Save(link).Error
}
