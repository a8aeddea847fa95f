package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation types.
const (
	RecommendationDietCorrection = "diet_correction"
	RecommendationNutrition      = "nutrition"
	RecommendationHealth         = "health"
	RecommendationGeneral        = "general"
)

// Recommendation statuses.
const (
	RecommendationNew     = "new"
	RecommendationRead    = "read"
	RecommendationApplied = "applied"
)

// Recommendation carries a serialized suggestion, e.g. the corrected macro
// targets produced by the diet correction engine.
type Recommendation struct {
	gorm.Model
	UserID  uint  `gorm:"index;not null"`
	MealID  *uint `gorm:"index"`
	Type    string `gorm:"size:32;not null"`
	Payload datatypes.JSON
	Status  string `gorm:"size:16;default:'new'"`
}
