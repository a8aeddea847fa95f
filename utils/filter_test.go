package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func product(name string, tags models.ProductTag) models.Product {
	return models.Product{Name: name, Tags: tags}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterByAllergensSubstring(t *testing.T) {
	catalog := []models.Product{
		{Name: "Cheese sauce", Allergens: "Milk, Soy"},
		{Name: "Rice", Allergens: ""},
	}

	// Case-insensitive substring over the free-text field.
	assert.Equal(t, []string{"Rice"}, names(FilterByAllergens(catalog, []string{"milk"})))
	assert.Equal(t, []string{"Rice"}, names(FilterByAllergens(catalog, []string{"MILK"})))
	assert.Len(t, FilterByAllergens(catalog, nil), 2)
}

func TestFilterByAllergensTagPath(t *testing.T) {
	catalog := []models.Product{
		product("Yogurt", models.TagDairy),
		product("Walnuts", models.TagTreeNut),
		product("Peanut butter", models.TagPeanut),
		product("Apple", 0),
	}

	assert.Equal(t, []string{"Walnuts", "Peanut butter", "Apple"},
		names(FilterByAllergens(catalog, []string{"milk"})))
	// "nuts" covers tree nuts and peanuts both.
	assert.Equal(t, []string{"Yogurt", "Apple"},
		names(FilterByAllergens(catalog, []string{"nuts"})))
}

func TestFilterByDietaryRestrictionVegan(t *testing.T) {
	catalog := []models.Product{
		product("Beef", models.TagMeat),
		product("Bacon", models.TagPork),
		product("Salmon", models.TagFish),
		product("Shrimp", models.TagShellfish),
		product("Milk", models.TagDairy),
		product("Eggs", models.TagEgg),
		product("Honey", models.TagHoney),
		product("Oat milk", models.TagPlantMilk),
		product("Lentils", models.TagLegume),
	}

	kept := FilterByDietaryRestriction(catalog, models.RestrictionVegan)
	assert.Equal(t, []string{"Oat milk", "Lentils"}, names(kept))

	// Filtering an already-admissible set changes nothing.
	assert.Equal(t, kept, FilterByDietaryRestriction(kept, models.RestrictionVegan))
}

func TestFilterByDietaryRestrictionLactoseFree(t *testing.T) {
	catalog := []models.Product{
		product("Cow milk", models.TagDairy),
		product("Soy latte", models.TagDairy|models.TagPlantMilk),
		product("Bread", models.TagGluten),
	}
	kept := FilterByDietaryRestriction(catalog, models.RestrictionLactoseFree)
	assert.Equal(t, []string{"Soy latte", "Bread"}, names(kept))
}

func TestFilterByDietaryRestrictionUnknownPassesThrough(t *testing.T) {
	catalog := []models.Product{product("Beef", models.TagMeat)}
	assert.Len(t, FilterByDietaryRestriction(catalog, models.RestrictionNone), 1)
	assert.Len(t, FilterByDietaryRestriction(catalog, "keto"), 1)
}

func TestFilterByMedicalConditions(t *testing.T) {
	catalog := []models.Product{
		product("Candy", models.TagSugar|models.TagHighGI),
		product("Pickles", models.TagHighSodium),
		product("Chicken breast", models.TagMeat|models.TagHighProtein),
		product("Untagged jam", 0),
	}

	kept := FilterByMedicalConditions(catalog, []string{"diabetes"}, false)
	assert.Equal(t, []string{"Pickles", "Chicken breast", "Untagged jam"}, names(kept))

	// A tag-less product is never excluded by the condition rules.
	kept = FilterByMedicalConditions(catalog, []string{"diabetes", "hypertension"}, false)
	assert.Equal(t, []string{"Chicken breast", "Untagged jam"}, names(kept))
}

func TestFilterByMedicalConditionsAdvisoryGating(t *testing.T) {
	catalog := []models.Product{
		product("Beans", models.TagLegume),
		product("Ham", models.TagHighSodium),
	}

	// Legumes are only advisory for kidney disease.
	kept := FilterByMedicalConditions(catalog, []string{"kidney disease"}, false)
	assert.Equal(t, []string{"Beans"}, names(kept))

	kept = FilterByMedicalConditions(catalog, []string{"Kidney-Disease"}, true)
	assert.Empty(t, kept)
}

func TestFilterByRestrictionsComposition(t *testing.T) {
	catalog := []models.Product{
		product("Beef", models.TagMeat),
		{Name: "Peanut bar", Allergens: "peanuts", Tags: models.TagPeanut},
		product("Candy", models.TagSugar),
		product("Buckwheat", 0),
	}
	rp := RestrictionProfile{
		Allergens:          []string{"peanuts"},
		MedicalConditions:  []string{"diabetes"},
		DietaryRestriction: models.RestrictionVegetarian,
	}
	assert.Equal(t, []string{"Buckwheat"}, names(FilterByRestrictions(catalog, rp, false)))
}
