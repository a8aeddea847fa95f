package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan statuses.
const (
	PlanStatusPlanned    = "planned"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
)

// Meal-time categories.
const (
	MealBreakfast   = "breakfast"
	MealLunch       = "lunch"
	MealDinner      = "dinner"
	MealSnack       = "snack"
	MealPreWorkout  = "pre_workout"
	MealPostWorkout = "post_workout"
)

// DailyDietPlan is created atomically with all four slots by the generator
// and mutated in place by the correction engine.
type DailyDietPlan struct {
	gorm.Model
	UserID      uint  `gorm:"index;not null"`
	TemplateID  *uint `gorm:"index"`
	Name        string
	Calories    float64
	Protein     float64
	Fat         float64
	Carbs       float64
	MealCount   int
	Status      string `gorm:"size:20;default:'planned'"`
	IsCorrected bool   `gorm:"default:false"`
	Meals       []Meal `gorm:"foreignKey:PlanID"`
}

// Meal is one slot of a plan with its target macros.
type Meal struct {
	gorm.Model
	PlanID   uint   `gorm:"index;not null"`
	MealTime string `gorm:"size:20;not null"`
	Position int
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Recipes  []MealRecipe `gorm:"foreignKey:MealID"`
}

// MealRecipe links a meal to a recipe. Portions carries the computed
// portion-scaling metadata (multiplier plus per-product gram amounts).
type MealRecipe struct {
	gorm.Model
	MealID   uint `gorm:"index;not null"`
	RecipeID uint `gorm:"index;not null"`
	Portions datatypes.JSON
}
