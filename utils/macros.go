package utils

import (
	"errors"
	"math"
	"time"

	"backend/models"
)

// Macronutrients is a daily or per-slot target: calories plus gram amounts.
type Macronutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// activityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth for valid levels.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

// CalculateAge returns full years between birthDate and today.
func CalculateAge(birthDate time.Time) (int, error) {
	if birthDate.IsZero() {
		return 0, errors.New("birth date is not set")
	}
	now := time.Now()
	age := now.Year() - birthDate.Year()
	if now.Before(birthDate.AddDate(age, 0, 0)) {
		age--
	}
	return age, nil
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// Weight in kg, height in cm, age in years.
func CalculateBMR(weightKg, heightCm float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		bmr -= 78
	}
	return bmr
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to sedentary.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * mult
}

// CalculateCaloriesByGoal adjusts TDEE toward the user's goal.
func CalculateCaloriesByGoal(tdee float64, goal string) float64 {
	switch goal {
	case models.GoalWeightLoss:
		return tdee * 0.825
	case models.GoalWeightGain:
		return tdee * 1.125
	default:
		return tdee
	}
}

// CalculateMacros splits a calorie target into gram targets. Protein and fat
// have bodyweight floors; carbs take the remainder and never go negative.
func CalculateMacros(calories, weightKg float64, goal string) Macronutrients {
	protein := math.Max(weightKg*1.9, calories*0.275/4)
	fat := math.Max(weightKg*0.9, calories*0.275/9)
	carbs := math.Max(0, (calories-protein*4-fat*9)/4)
	return Macronutrients{
		Calories: Round1(calories),
		Protein:  Round1(protein),
		Fat:      Round1(fat),
		Carbs:    Round1(carbs),
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }
