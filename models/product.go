package models

import "gorm.io/gorm"

// ProductTag is a bitmask of semantic attributes used by the admissibility
// filters. Membership test is bitwise AND.
type ProductTag int64

const (
	TagMeat ProductTag = 1 << iota
	TagPork
	TagFish
	TagShellfish
	TagDairy
	TagEgg
	TagHoney
	TagGluten
	TagSoy
	TagPlantMilk
	TagLegume
	TagHighGI
	TagHighSodium
	TagHighProtein
	TagSugar
	TagPotassium
	TagPhosphorus
	TagTreeNut
	TagPeanut
	TagAlcohol
)

// Has reports whether any tag in mask is set.
func (t ProductTag) Has(mask ProductTag) bool { return t&mask != 0 }

// Product is a catalog entry with per-100g macros. Tags are the primary
// filter substrate; Allergens and Restrictions are free-text legacy fields
// matched by the keyword path.
type Product struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
	Allergens    string     `gorm:"type:text"`
	Restrictions string     `gorm:"type:text"`
	Tags         ProductTag `gorm:"default:0"`
}
