package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CorrectionEpsilon is the per-macro change below which a suggested
// correction is not material.
const CorrectionEpsilon = 0.01

// correctionPayload is the serialized suggestion stored on a
// diet-correction recommendation.
type correctionPayload struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Reason   string  `json:"reason,omitempty"`
}

type CorrectionService struct {
	plans    repository.PlanRepository
	recs     repository.RecommendationRepository
	profiles repository.ProfileRepository
	recipes  repository.RecipeRepository
	signals  SignalSource
}

func NewCorrectionService(
	plans repository.PlanRepository,
	recs repository.RecommendationRepository,
	profiles repository.ProfileRepository,
	recipes repository.RecipeRepository,
	signals SignalSource,
) *CorrectionService {
	return &CorrectionService{plans: plans, recs: recs, profiles: profiles, recipes: recipes, signals: signals}
}

// CheckAndSuggestCorrections recomputes the plan's macro targets from
// current activity and sleep signals and records at most one
// diet-correction recommendation. Returns an empty list when the plan
// belongs to another user or no macro moves beyond the epsilon.
func (s *CorrectionService) CheckAndSuggestCorrections(userID, planID uint) ([]models.Recommendation, error) {
	plan, err := s.plans.FindByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %d", ErrNotFound, planID)
		}
		return nil, err
	}
	if plan.UserID != userID {
		return []models.Recommendation{}, nil
	}

	now := time.Now()
	activity, err := s.signals.AnalyzeActivity(userID, now)
	if err != nil {
		return nil, err
	}
	sleep, err := s.signals.AnalyzeSleep(userID, now)
	if err != nil {
		return nil, err
	}

	current := planMacros(plan)
	corrected := CalculateCorrectedMacros(current, activity, sleep)
	if !materialChange(current, corrected) {
		return []models.Recommendation{}, nil
	}

	payload := correctionPayload{
		Calories: corrected.Calories,
		Protein:  corrected.Protein,
		Fat:      corrected.Fat,
		Carbs:    corrected.Carbs,
		Reason:   s.correctionReason(userID, activity, sleep),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	rec := models.Recommendation{
		UserID:  userID,
		Type:    models.RecommendationDietCorrection,
		Status:  models.RecommendationNew,
		Payload: datatypes.JSON(body),
	}
	if err := s.recs.Create(&rec); err != nil {
		return nil, err
	}
	return []models.Recommendation{rec}, nil
}

// CalculateCorrectedMacros applies the directional adjustment rules in
// order: activity branch first, then sleep, then heart rate on top of the
// earlier output. Pure so the rule set is testable without storage.
func CalculateCorrectedMacros(current utils.Macronutrients, activity ActivitySignal, sleep SleepSignal) utils.Macronutrients {
	m := current

	if activity.StepsSpike || activity.TrainingIntensityChangePct > TrainingIntensityTrigger {
		rawCarbs := m.Carbs * 1.10
		rawFat := m.Fat * 0.95
		target := m.Calories * 1.10
		p, f, c := normalizeToCalories(target, m.Protein, rawFat, rawCarbs)
		// Biasing: fat never above its decreased value, carbs never below
		// its increased value.
		f = math.Min(f, rawFat)
		c = math.Max(c, rawCarbs)
		m = utils.Macronutrients{Calories: target, Protein: p, Fat: f, Carbs: c}
	} else if activity.StepsWeeklyAvg > 0 && activity.StepsChangePct < StepsDropPct {
		rawCarbs := m.Carbs * 0.90
		rawProtein := m.Protein * 1.10
		target := m.Calories * 0.95
		p, f, c := normalizeToCalories(target, rawProtein, m.Fat, rawCarbs)
		p = math.Max(p, rawProtein)
		c = math.Min(c, rawCarbs)
		m = utils.Macronutrients{Calories: target, Protein: p, Fat: f, Carbs: c}
	}

	if sleep.Deprived {
		m.Protein *= 1.10
		m.Carbs *= 0.90
		m.Calories = caloriesFromMacros(m.Protein, m.Fat, m.Carbs)
	}

	if activity.HeartRateAnomaly {
		target := m.Calories * 0.90
		m.Protein *= 1.05
		m.Carbs *= 0.95
		computed := caloriesFromMacros(m.Protein, m.Fat, m.Carbs)
		if computed > target && computed > 0 {
			scale := target / computed
			m.Protein *= scale
			m.Fat *= scale
			m.Carbs *= scale
			computed = target
		}
		m.Calories = computed
	}

	m.Protein = utils.Round1(math.Max(0, m.Protein))
	m.Fat = utils.Round1(math.Max(0, m.Fat))
	m.Carbs = utils.Round1(math.Max(0, m.Carbs))
	m.Calories = utils.Round1(math.Max(0, m.Calories))
	return m
}

// ApplyCorrection overwrites the plan's macro targets with the suggested
// values and marks the recommendation applied. The meal rebalance that
// follows is best-effort: its failure is logged, never propagated.
func (s *CorrectionService) ApplyCorrection(planID, recommendationID uint) (*models.DailyDietPlan, error) {
	rec, err := s.recs.FindByID(recommendationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recommendation %d", ErrNotFound, recommendationID)
		}
		return nil, err
	}
	if rec.Type != models.RecommendationDietCorrection {
		return nil, fmt.Errorf("%w: recommendation %d is not a diet correction", ErrInvalidArgument, recommendationID)
	}
	var payload correctionPayload
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return nil, fmt.Errorf("%w: unreadable correction payload: %v", ErrInvalidArgument, err)
	}

	plan, err := s.plans.FindByIDWithMeals(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %d", ErrNotFound, planID)
		}
		return nil, err
	}

	old := planMacros(plan)
	suggested := utils.Macronutrients{
		Calories: payload.Calories,
		Protein:  payload.Protein,
		Fat:      payload.Fat,
		Carbs:    payload.Carbs,
	}

	plan.Calories = suggested.Calories
	plan.Protein = suggested.Protein
	plan.Fat = suggested.Fat
	plan.Carbs = suggested.Carbs
	plan.IsCorrected = true
	if err := s.plans.Update(plan); err != nil {
		return nil, err
	}

	rec.Status = models.RecommendationApplied
	if err := s.recs.Update(rec); err != nil {
		return nil, err
	}

	if err := s.RebalanceMeals(plan, old, suggested); err != nil {
		log.Printf("rebalance after correction on plan %d failed: %v", plan.ID, err)
	}
	return plan, nil
}

// RebalanceMeals scales every meal's macros by the per-macro ratio of the
// target change, recomputes meal calories from the scaled macros and
// rewrites each linked recipe's portion metadata. A recipe whose details
// cannot be resolved gets empty metadata rather than failing the pass.
func (s *CorrectionService) RebalanceMeals(plan *models.DailyDietPlan, oldMacros, newMacros utils.Macronutrients) error {
	if oldMacros.Calories <= 0 || newMacros.Calories <= 0 {
		return nil
	}

	proteinRatio := macroRatio(newMacros.Protein, oldMacros.Protein)
	fatRatio := macroRatio(newMacros.Fat, oldMacros.Fat)
	carbsRatio := macroRatio(newMacros.Carbs, oldMacros.Carbs)

	meals := plan.Meals
	if len(meals) == 0 {
		var err error
		meals, err = s.plans.FindMealsByPlanID(plan.ID)
		if err != nil {
			return err
		}
	}

	for i := range meals {
		meal := &meals[i]
		meal.Protein = utils.Round1(meal.Protein * proteinRatio)
		meal.Fat = utils.Round1(meal.Fat * fatRatio)
		meal.Carbs = utils.Round1(meal.Carbs * carbsRatio)
		meal.Calories = utils.Round1(caloriesFromMacros(meal.Protein, meal.Fat, meal.Carbs))
		if err := s.plans.UpdateMeal(meal); err != nil {
			return err
		}

		if len(meal.Recipes) == 0 {
			continue
		}
		perRecipe := meal.Calories / float64(len(meal.Recipes))
		for j := range meal.Recipes {
			link := &meal.Recipes[j]
			detail, err := s.recipes.FindByIDWithProducts(link.RecipeID)
			if err != nil {
				link.Portions = nil
			} else {
				link.Portions = portionMetadata(*detail, perRecipe)
			}
			if err := s.plans.UpdateMealRecipe(link); err != nil {
				return err
			}
		}
	}
	return nil
}

// correctionReason builds the user-facing explanation in the profile's
// display language; the locale lookup is best-effort.
func (s *CorrectionService) correctionReason(userID uint, activity ActivitySignal, sleep SleepSignal) string {
	locale := "en"
	if profile, err := s.profiles.FindByUserID(userID); err == nil && profile.Locale != "" {
		locale = profile.Locale
	}
	msgs := reasonMessages[locale]
	if msgs == nil {
		msgs = reasonMessages["en"]
	}
	switch {
	case activity.StepsSpike || activity.TrainingIntensityChangePct > TrainingIntensityTrigger:
		return msgs["high_activity"]
	case activity.StepsWeeklyAvg > 0 && activity.StepsChangePct < StepsDropPct:
		return msgs["low_activity"]
	case sleep.Deprived:
		return msgs["sleep"]
	case activity.HeartRateAnomaly:
		return msgs["heart_rate"]
	default:
		return msgs["general"]
	}
}

var reasonMessages = map[string]map[string]string{
	"en": {
		"high_activity": "Activity is up this week, so carbohydrates and calories were raised.",
		"low_activity":  "Activity dropped, so calories were trimmed and protein raised to preserve muscle.",
		"sleep":         "Recent sleep was short, so protein was raised and fast carbohydrates reduced.",
		"heart_rate":    "Heart rate is elevated, so the calorie target was reduced.",
		"general":       "Your targets were adjusted to recent physiological signals.",
	},
	"uk": {
		"high_activity": "Активність зросла, тому вуглеводи та калорійність збільшено.",
		"low_activity":  "Активність знизилась, тому калорійність зменшено, а білок збільшено.",
		"sleep":         "Останній сон був закоротким, тому білок збільшено, а швидкі вуглеводи зменшено.",
		"heart_rate":    "Пульс підвищений, тому цільову калорійність зменшено.",
		"general":       "Цілі скориговано відповідно до останніх фізіологічних сигналів.",
	},
}

func planMacros(plan *models.DailyDietPlan) utils.Macronutrients {
	return utils.Macronutrients{
		Calories: plan.Calories,
		Protein:  plan.Protein,
		Fat:      plan.Fat,
		Carbs:    plan.Carbs,
	}
}

func materialChange(a, b utils.Macronutrients) bool {
	return math.Abs(a.Calories-b.Calories) > CorrectionEpsilon ||
		math.Abs(a.Protein-b.Protein) > CorrectionEpsilon ||
		math.Abs(a.Fat-b.Fat) > CorrectionEpsilon ||
		math.Abs(a.Carbs-b.Carbs) > CorrectionEpsilon
}

// macroRatio keeps a macro unscaled when its old value is zero.
func macroRatio(newVal, oldVal float64) float64 {
	if oldVal <= 0 {
		return 1
	}
	return newVal / oldVal
}

func caloriesFromMacros(protein, fat, carbs float64) float64 {
	return 4*protein + 9*fat + 4*carbs
}

func normalizeToCalories(target, protein, fat, carbs float64) (float64, float64, float64) {
	current := caloriesFromMacros(protein, fat, carbs)
	if current <= 0 {
		return protein, fat, carbs
	}
	scale := target / current
	return protein * scale, fat * scale, carbs * scale
}
