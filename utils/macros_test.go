package utils

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	assert.InDelta(t, 1648.75, CalculateBMR(70, 175, 30, "male"), 0.001)
	assert.InDelta(t, 1482.75, CalculateBMR(70, 175, 30, "female"), 0.001)
	assert.InDelta(t, 1565.75, CalculateBMR(70, 175, 30, ""), 0.001)
}

func TestCalculateTDEE(t *testing.T) {
	assert.InDelta(t, 1920, CalculateTDEE(1600, models.ActivitySedentary), 0.001)
	assert.InDelta(t, 2760, CalculateTDEE(1600, models.ActivityVeryActive), 0.001)
	// Unknown level falls back to sedentary.
	assert.InDelta(t, 1920, CalculateTDEE(1600, "couch"), 0.001)
}

func TestCalculateCaloriesByGoal(t *testing.T) {
	assert.InDelta(t, 1650, CalculateCaloriesByGoal(2000, models.GoalWeightLoss), 0.001)
	assert.InDelta(t, 2250, CalculateCaloriesByGoal(2000, models.GoalWeightGain), 0.001)
	assert.InDelta(t, 2000, CalculateCaloriesByGoal(2000, models.GoalMaintenance), 0.001)
	assert.InDelta(t, 2000, CalculateCaloriesByGoal(2000, models.GoalHealthCorrection), 0.001)
}

func TestCalculateMacrosCarbFloor(t *testing.T) {
	// A tiny calorie target with a heavy body: protein and fat floors eat
	// the whole budget, carbs must clamp at zero rather than go negative.
	m := CalculateMacros(300, 80, models.GoalWeightLoss)
	assert.Equal(t, 0.0, m.Carbs)
	assert.InDelta(t, 152, m.Protein, 0.1) // 80 * 1.9
	assert.InDelta(t, 72, m.Fat, 0.1)      // 80 * 0.9
}

func TestCalculateMacrosBalanced(t *testing.T) {
	m := CalculateMacros(2500, 70, models.GoalMaintenance)
	assert.InDelta(t, 171.9, m.Protein, 0.1) // 2500*0.275/4 beats 70*1.9
	assert.InDelta(t, 76.4, m.Fat, 0.1)
	assert.Greater(t, m.Carbs, 0.0)
	assert.Equal(t, 2500.0, m.Calories)
}

func TestCalculateAge(t *testing.T) {
	now := time.Now()

	age, err := CalculateAge(now.AddDate(-30, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, 30, age)

	// One day short of the 30th birthday.
	age, err = CalculateAge(now.AddDate(-30, 0, 1))
	assert.NoError(t, err)
	assert.Equal(t, 29, age)

	_, err = CalculateAge(time.Time{})
	assert.Error(t, err)
}
