package utils

import (
	"strings"
	"unicode"

	"backend/models"
)

// KeywordSeverity categorizes how serious a keyword match is. Strict and
// moderate matches always exclude; advisory matches only exclude when the
// caller opts in.
type KeywordSeverity string

const (
	SeverityStrict   KeywordSeverity = "strict"
	SeverityModerate KeywordSeverity = "moderate"
	SeverityAdvisory KeywordSeverity = "advisory"
)

// conditionKeywords is the legacy free-text matching path kept for products
// whose persisted restriction/allergen fields predate tagging. English and
// Ukrainian keyword sets.
var conditionKeywords = map[string]map[string]KeywordSeverity{
	"diabetes": {
		"sugar":   SeverityStrict,
		"цукор":   SeverityStrict,
		"glucose": SeverityStrict,
		"глюкоза": SeverityStrict,
		"honey":   SeverityModerate,
		"мед":     SeverityModerate,
		"syrup":   SeverityModerate,
		"сироп":   SeverityModerate,
		"fruit":   SeverityAdvisory,
		"фрукти":  SeverityAdvisory,
	},
	"hypertension": {
		"salt":     SeverityStrict,
		"сіль":     SeverityStrict,
		"sodium":   SeverityStrict,
		"натрій":   SeverityStrict,
		"brine":    SeverityModerate,
		"розсіл":   SeverityModerate,
		"smoked":   SeverityModerate,
		"копчений": SeverityModerate,
		"caffeine": SeverityAdvisory,
		"кофеїн":   SeverityAdvisory,
	},
	"celiac disease": {
		"gluten":  SeverityStrict,
		"глютен":  SeverityStrict,
		"wheat":   SeverityStrict,
		"пшениця": SeverityStrict,
		"barley":  SeverityModerate,
		"ячмінь":  SeverityModerate,
		"rye":     SeverityModerate,
		"жито":    SeverityModerate,
		"oats":    SeverityAdvisory,
		"овес":    SeverityAdvisory,
	},
	"lactose intolerance": {
		"lactose": SeverityStrict,
		"лактоза": SeverityStrict,
		"milk":    SeverityStrict,
		"молоко":  SeverityStrict,
		"cream":   SeverityModerate,
		"вершки":  SeverityModerate,
		"cheese":  SeverityModerate,
		"сир":     SeverityModerate,
		"butter":  SeverityAdvisory,
		"масло":   SeverityAdvisory,
	},
	"kidney disease": {
		"salt":      SeverityStrict,
		"сіль":      SeverityStrict,
		"sodium":    SeverityStrict,
		"натрій":    SeverityStrict,
		"protein":   SeverityAdvisory,
		"білок":     SeverityAdvisory,
		"potassium": SeverityAdvisory,
		"калій":     SeverityAdvisory,
		"phosphorus": SeverityAdvisory,
		"фосфор":     SeverityAdvisory,
	},
}

// ShouldExcludeByKeywords reports whether the product's text fields match
// any condition's keyword table. Conditions are OR'd. Matching runs over a
// combined lowercase string of restriction field, name and allergens field,
// tokenized on non-alphanumeric boundaries (Latin and Cyrillic letters both
// count as word characters).
func ShouldExcludeByKeywords(p models.Product, conditions []string, includeAdvisory bool) bool {
	if len(conditions) == 0 {
		return false
	}
	tokens := tokenizeProductText(p)
	if len(tokens) == 0 {
		return false
	}
	for _, c := range conditions {
		table, ok := conditionKeywords[normalizeCondition(c)]
		if !ok {
			continue
		}
		for _, tok := range tokens {
			sev, hit := table[tok]
			if !hit {
				continue
			}
			if sev != SeverityAdvisory || includeAdvisory {
				return true
			}
		}
	}
	return false
}

func tokenizeProductText(p models.Product) []string {
	combined := strings.ToLower(p.Restrictions + " " + p.Name + " " + p.Allergens)
	return strings.FieldsFunc(combined, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
