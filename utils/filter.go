package utils

import (
	"strings"

	"backend/models"
)

// allergenTagMask maps a user-declared allergen to the product tags that
// imply it. Free-text allergen fields are matched separately by substring.
var allergenTagMask = map[string]models.ProductTag{
	"eggs":    models.TagEgg,
	"milk":    models.TagDairy,
	"fish":    models.TagFish | models.TagShellfish,
	"nuts":    models.TagTreeNut | models.TagPeanut,
	"peanuts": models.TagPeanut,
	"gluten":  models.TagGluten,
	"soy":     models.TagSoy,
}

// restrictionExcludes maps a dietary restriction category to a predicate
// over product tags; true means the product is excluded. Data-driven so new
// categories are one table entry, not another branch.
var restrictionExcludes = map[string]func(models.ProductTag) bool{
	models.RestrictionVegetarian:  tagAny(models.TagMeat | models.TagPork),
	models.RestrictionVegan:       tagAny(models.TagMeat | models.TagPork | models.TagFish | models.TagShellfish | models.TagDairy | models.TagEgg | models.TagHoney),
	models.RestrictionPescatarian: tagAny(models.TagMeat | models.TagPork),
	models.RestrictionGlutenFree:  tagAny(models.TagGluten),
	models.RestrictionLactoseFree: dairyWithoutPlantMilk,
	models.RestrictionHalal:       tagAny(models.TagAlcohol | models.TagPork),
	models.RestrictionKosher:      tagAny(models.TagPork | models.TagShellfish),
}

func tagAny(mask models.ProductTag) func(models.ProductTag) bool {
	return func(t models.ProductTag) bool { return t.Has(mask) }
}

func dairyWithoutPlantMilk(t models.ProductTag) bool {
	return t.Has(models.TagDairy) && !t.Has(models.TagPlantMilk)
}

// conditionRule describes the tag exclusions for one medical condition.
// Advisory tags only exclude when the caller opts in.
type conditionRule struct {
	always   models.ProductTag
	advisory models.ProductTag
	custom   func(models.ProductTag) bool
}

var conditionRules = map[string]conditionRule{
	"diabetes":            {always: models.TagHighGI | models.TagSugar},
	"hypertension":        {always: models.TagHighSodium},
	"kidney disease":      {always: models.TagHighProtein | models.TagHighSodium, advisory: models.TagPotassium | models.TagPhosphorus | models.TagLegume},
	"celiac disease":      {always: models.TagGluten},
	"lactose intolerance": {custom: dairyWithoutPlantMilk},
}

// FilterByAllergens drops products whose free-text allergen field contains
// any user allergen (case-insensitive substring) or whose tags match the
// allergen's tag mapping.
func FilterByAllergens(products []models.Product, allergens []string) []models.Product {
	if len(allergens) == 0 {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !allergenMatches(p, allergens) {
			out = append(out, p)
		}
	}
	return out
}

func allergenMatches(p models.Product, allergens []string) bool {
	field := strings.ToLower(p.Allergens)
	for _, a := range allergens {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if field != "" && strings.Contains(field, a) {
			return true
		}
		if mask, ok := allergenTagMask[a]; ok && p.Tags.Has(mask) {
			return true
		}
	}
	return false
}

// FilterByDietaryRestriction keeps products admissible under the given
// category. Unknown categories and "none" pass everything through.
func FilterByDietaryRestriction(products []models.Product, restriction string) []models.Product {
	exclude, ok := restrictionExcludes[restriction]
	if !ok {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !exclude(p.Tags) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByMedicalConditions applies the tag-based exclusion rule of every
// condition; any condition's match excludes. A product with no tags at all
// is never excluded here.
func FilterByMedicalConditions(products []models.Product, conditions []string, includeAdvisory bool) []models.Product {
	if len(conditions) == 0 {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Tags == 0 || !conditionMatches(p.Tags, conditions, includeAdvisory) {
			out = append(out, p)
		}
	}
	return out
}

func conditionMatches(tags models.ProductTag, conditions []string, includeAdvisory bool) bool {
	for _, c := range conditions {
		rule, ok := conditionRules[normalizeCondition(c)]
		if !ok {
			continue
		}
		if rule.always != 0 && tags.Has(rule.always) {
			return true
		}
		if includeAdvisory && rule.advisory != 0 && tags.Has(rule.advisory) {
			return true
		}
		if rule.custom != nil && rule.custom(tags) {
			return true
		}
	}
	return false
}

func normalizeCondition(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	c = strings.ReplaceAll(c, "_", " ")
	c = strings.ReplaceAll(c, "-", " ")
	return strings.Join(strings.Fields(c), " ")
}

// FilterByRestrictions composes the three filters in order: allergens,
// dietary restriction, medical conditions.
func FilterByRestrictions(products []models.Product, rp RestrictionProfile, includeAdvisory bool) []models.Product {
	out := FilterByAllergens(products, rp.Allergens)
	out = FilterByDietaryRestriction(out, rp.DietaryRestriction)
	return FilterByMedicalConditions(out, rp.MedicalConditions, includeAdvisory)
}
