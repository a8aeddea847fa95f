package repository

import (
	"time"

	"backend/models"
)

// ProfileRepository reads and writes user profiles keyed by user ID.
type ProfileRepository interface {
	FindByUserID(userID uint) (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

// ProductRepository is a full-scan catalog reader; filtering is in-memory.
type ProductRepository interface {
	FindAll() ([]models.Product, error)
}

// RecipeRepository reads the recipe catalog. FindAll preloads the linked
// products so admissibility can be checked without per-recipe lookups.
type RecipeRepository interface {
	FindAll() ([]models.Recipe, error)
	FindByIDWithProducts(id uint) (*models.Recipe, error)
}

// PlanRepository stores plans, meals and meal-recipe links.
type PlanRepository interface {
	Create(plan *models.DailyDietPlan) error
	FindByID(id uint) (*models.DailyDietPlan, error)
	FindByIDWithMeals(id uint) (*models.DailyDietPlan, error)
	FindByUserCreatedBetween(userID uint, from, to time.Time) ([]models.DailyDietPlan, error)
	Update(plan *models.DailyDietPlan) error
	CreateMeal(meal *models.Meal) error
	UpdateMeal(meal *models.Meal) error
	FindMealsByPlanID(planID uint) ([]models.Meal, error)
	CreateMealRecipe(link *models.MealRecipe) error
	UpdateMealRecipe(link *models.MealRecipe) error
}

// RecommendationRepository stores correction and advice records.
type RecommendationRepository interface {
	Create(rec *models.Recommendation) error
	FindByID(id uint) (*models.Recommendation, error)
	FindByUserID(userID uint) ([]models.Recommendation, error)
	Update(rec *models.Recommendation) error
}

// TelemetryRepository stores daily wearable data. UpsertBatch runs inside a
// single transaction; any failure rolls the whole batch back.
type TelemetryRepository interface {
	FindByUserBetween(userID uint, from, to time.Time) ([]models.DeviceTelemetry, error)
	UpsertBatch(records []models.DeviceTelemetry) error
}

// SleepRepository stores nightly sleep records.
type SleepRepository interface {
	FindByUserBetween(userID uint, from, to time.Time) ([]models.SleepRecord, error)
	UpsertBatch(records []models.SleepRecord) error
}

// TrainingRepository stores logged workouts.
type TrainingRepository interface {
	FindByUserBetween(userID uint, from, to time.Time) ([]models.TrainingSession, error)
	Create(session *models.TrainingSession) error
}
