package utils

import (
	"encoding/json"
	"strings"

	"backend/models"
)

// RestrictionProfile is the structured form of a user's free-form
// restriction descriptor.
type RestrictionProfile struct {
	Allergens          []string `json:"allergens,omitempty"`
	MedicalConditions  []string `json:"medicalConditions,omitempty"`
	DietaryRestriction string   `json:"dietaryRestriction,omitempty"`
}

var dietaryRestrictions = []string{
	models.RestrictionVegan,
	models.RestrictionVegetarian,
	models.RestrictionPescatarian,
	models.RestrictionGlutenFree,
	models.RestrictionLactoseFree,
	models.RestrictionHalal,
	models.RestrictionKosher,
	models.RestrictionNone,
}

// ParseRestrictions turns a descriptor into a profile. A JSON object is
// parsed structurally (key matching is case-insensitive); anything else is
// treated as a comma-separated list where tokens naming a known dietary
// restriction set the category and all other tokens accumulate verbatim as
// medical conditions. Malformed input never fails — the fallback is the
// contract, not validation.
func ParseRestrictions(raw string) RestrictionProfile {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RestrictionProfile{DietaryRestriction: models.RestrictionNone}
	}

	var p RestrictionProfile
	if err := json.Unmarshal([]byte(raw), &p); err == nil {
		if r, ok := restrictionByName(p.DietaryRestriction); ok {
			p.DietaryRestriction = r
		} else {
			p.DietaryRestriction = models.RestrictionNone
		}
		return p
	}

	out := RestrictionProfile{DietaryRestriction: models.RestrictionNone}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if r, ok := restrictionByName(tok); ok {
			out.DietaryRestriction = r
			continue
		}
		out.MedicalConditions = append(out.MedicalConditions, tok)
	}
	return out
}

// SerializeRestrictions is the structural inverse of ParseRestrictions for
// profiles that came from the JSON path.
func SerializeRestrictions(p RestrictionProfile) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// restrictionByName resolves "Gluten-Free", "gluten free" etc. to the
// canonical category name.
func restrictionByName(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	n = strings.ReplaceAll(n, " ", "_")
	for _, r := range dietaryRestrictions {
		if n == r {
			return r, true
		}
	}
	return "", false
}
