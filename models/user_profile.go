package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity levels used for TDEE scaling.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtremelyActive  = "extremely_active"
)

// Goal types.
const (
	GoalWeightLoss       = "weight_loss"
	GoalWeightGain       = "weight_gain"
	GoalMaintenance      = "maintenance"
	GoalHealthCorrection = "health_correction"
)

// Dietary restriction categories. A profile carries at most one.
const (
	RestrictionNone        = "none"
	RestrictionVegan       = "vegan"
	RestrictionVegetarian  = "vegetarian"
	RestrictionPescatarian = "pescatarian"
	RestrictionGlutenFree  = "gluten_free"
	RestrictionLactoseFree = "lactose_free"
	RestrictionHalal       = "halal"
	RestrictionKosher      = "kosher"
)

// UserProfile holds the physiology and preferences the plan generator
// works from. Restrictions is a free-form descriptor (JSON object or a
// comma-separated list) parsed once per generation run.
type UserProfile struct {
	gorm.Model
	UserID        uint      `gorm:"uniqueIndex;not null"`
	Birthday      time.Time // required to compute age
	Sex           string    `gorm:"size:16"` // "male" | "female" | ""
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"size:32"`
	Goal          string `gorm:"size:32"`
	Restrictions  string `gorm:"type:text"`
	Locale        string `gorm:"size:8;default:'en'"` // display language for recommendation text
}
