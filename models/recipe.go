package models

import "gorm.io/gorm"

// Recipe has fixed per-portion macros; the generator scales portions via a
// multiplier rather than editing the recipe itself. A recipe is admissible
// only when every linked product is admissible.
type Recipe struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Instructions string `gorm:"type:text"`
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
	TotalGrams   float64
	Products     []RecipeProduct `gorm:"foreignKey:RecipeID"`
}

// RecipeProduct links a recipe to a product with its per-portion quantity.
type RecipeProduct struct {
	gorm.Model
	RecipeID  uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Grams     float64
	Product   Product `gorm:"foreignKey:ProductID"`
}
