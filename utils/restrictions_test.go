package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRestrictionsEmpty(t *testing.T) {
	p := ParseRestrictions("")
	assert.Empty(t, p.Allergens)
	assert.Empty(t, p.MedicalConditions)
	assert.Equal(t, models.RestrictionNone, p.DietaryRestriction)

	p = ParseRestrictions("   ")
	assert.Equal(t, models.RestrictionNone, p.DietaryRestriction)
}

func TestParseRestrictionsJSON(t *testing.T) {
	p := ParseRestrictions(`{"allergens":["milk","peanuts"],"medicalConditions":["diabetes"],"dietaryRestriction":"vegan"}`)
	assert.Equal(t, []string{"milk", "peanuts"}, p.Allergens)
	assert.Equal(t, []string{"diabetes"}, p.MedicalConditions)
	assert.Equal(t, models.RestrictionVegan, p.DietaryRestriction)
}

func TestParseRestrictionsJSONCaseInsensitiveKeys(t *testing.T) {
	p := ParseRestrictions(`{"Allergens":["Soy"],"DietaryRestriction":"Gluten-Free"}`)
	assert.Equal(t, []string{"Soy"}, p.Allergens)
	assert.Equal(t, models.RestrictionGlutenFree, p.DietaryRestriction)
}

func TestParseRestrictionsCSVFallback(t *testing.T) {
	p := ParseRestrictions("diabetes, Vegan, {broken json")
	assert.Equal(t, models.RestrictionVegan, p.DietaryRestriction)
	// Non-restriction tokens accumulate verbatim, malformed fragments included.
	assert.Equal(t, []string{"diabetes", "{broken json"}, p.MedicalConditions)
}

func TestRestrictionsRoundTrip(t *testing.T) {
	original := RestrictionProfile{
		Allergens:          []string{"milk", "fish"},
		MedicalConditions:  []string{"hypertension", "diabetes"},
		DietaryRestriction: models.RestrictionPescatarian,
	}
	raw, err := SerializeRestrictions(original)
	assert.NoError(t, err)
	assert.Equal(t, original, ParseRestrictions(raw))
}
