package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Selection constants. Tests pin exact behavior around these, so they are
// configuration, not tuning knobs.
const (
	CalorieTolerance     = 0.15 // ±15% of slot target
	MacroTolerance       = 0.20 // ±20% of slot macro targets
	SlotFillThreshold    = 0.85 // stop accumulating at 85% of slot calories
	RecencyWindowDays    = 7
	MaxRecipeUsagePerDay = 1
)

// mealSlot fixes the calorie share of each of the four generated slots.
type mealSlot struct {
	MealTime string
	Share    float64
}

var mealSlots = []mealSlot{
	{models.MealBreakfast, 0.275},
	{models.MealLunch, 0.325},
	{models.MealDinner, 0.275},
	{models.MealSnack, 0.125},
}

type MealPlanService struct {
	profiles repository.ProfileRepository
	products repository.ProductRepository
	recipes  repository.RecipeRepository
	plans    repository.PlanRepository
}

func NewMealPlanService(
	profiles repository.ProfileRepository,
	products repository.ProductRepository,
	recipes repository.RecipeRepository,
	plans repository.PlanRepository,
) *MealPlanService {
	return &MealPlanService{profiles: profiles, products: products, recipes: recipes, plans: plans}
}

// GenerateMealPlan builds and persists a daily plan for the user: daily
// targets from physiology, per-slot targets by fixed shares, admissible
// recipes only, greedy nearest-fit selection within tolerance bands.
// Every plan gets all four slots; a slot whose pool yields nothing is
// persisted with its target macros and no recipes.
func (s *MealPlanService) GenerateMealPlan(userID uint, date time.Time, templateID *uint) (*models.DailyDietPlan, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no profile for user %d", ErrInvalidArgument, userID)
		}
		return nil, err
	}

	daily, err := dailyTargets(profile)
	if err != nil {
		return nil, err
	}

	admissible, err := s.admissibleProductIDs(profile)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentlyUsedRecipeIDs(userID, date)
	if err != nil {
		return nil, err
	}

	catalog, err := s.recipes.FindAll()
	if err != nil {
		return nil, err
	}

	// Select every slot up front so the plan row can carry the final meal
	// count before any meal is written.
	usedToday := map[uint]int{}
	slotTargets := make([]utils.Macronutrients, len(mealSlots))
	selections := make([][]models.Recipe, len(mealSlots))
	for i, slot := range mealSlots {
		slotTargets[i] = scaleMacros(daily, slot.Share)
		pool := eligibleRecipes(catalog, admissible, recent)
		selections[i] = selectForSlot(pool, slotTargets[i], usedToday)
	}

	totalRecipes := 0
	for _, sel := range selections {
		totalRecipes += len(sel)
	}

	plan := &models.DailyDietPlan{
		UserID:     userID,
		TemplateID: templateID,
		Name:       fmt.Sprintf("Daily plan %s", date.Format("2006-01-02")),
		Calories:   daily.Calories,
		Protein:    daily.Protein,
		Fat:        daily.Fat,
		Carbs:      daily.Carbs,
		MealCount:  totalRecipes,
		Status:     models.PlanStatusPlanned,
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}

	for i, slot := range mealSlots {
		meal := &models.Meal{
			PlanID:   plan.ID,
			MealTime: slot.MealTime,
			Position: i + 1,
		}
		target := slotTargets[i]
		if len(selections[i]) > 0 {
			sum := sumRecipeMacros(selections[i])
			meal.Calories = utils.Round1(sum.Calories)
			meal.Protein = utils.Round1(sum.Protein)
			meal.Fat = utils.Round1(sum.Fat)
			meal.Carbs = utils.Round1(sum.Carbs)
		} else {
			meal.Calories = target.Calories
			meal.Protein = target.Protein
			meal.Fat = target.Fat
			meal.Carbs = target.Carbs
		}
		if err := s.plans.CreateMeal(meal); err != nil {
			return nil, err
		}

		perRecipeCalories := 0.0
		if n := len(selections[i]); n > 0 {
			perRecipeCalories = target.Calories / float64(n)
		}
		for _, recipe := range selections[i] {
			link := &models.MealRecipe{
				MealID:   meal.ID,
				RecipeID: recipe.ID,
				Portions: portionMetadata(recipe, perRecipeCalories),
			}
			if err := s.plans.CreateMealRecipe(link); err != nil {
				return nil, err
			}
		}
	}

	return s.plans.FindByIDWithMeals(plan.ID)
}

// dailyTargets runs the calculator chain: age, BMR, TDEE, goal calories,
// macro split.
func dailyTargets(profile *models.UserProfile) (utils.Macronutrients, error) {
	age, err := utils.CalculateAge(profile.Birthday)
	if err != nil {
		return utils.Macronutrients{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	bmr := utils.CalculateBMR(profile.WeightKg, profile.HeightCm, age, profile.Sex)
	tdee := utils.CalculateTDEE(bmr, profile.ActivityLevel)
	calories := utils.CalculateCaloriesByGoal(tdee, profile.Goal)
	return utils.CalculateMacros(calories, profile.WeightKg, profile.Goal), nil
}

func (s *MealPlanService) admissibleProductIDs(profile *models.UserProfile) (map[uint]bool, error) {
	rp := utils.ParseRestrictions(profile.Restrictions)
	products, err := s.products.FindAll()
	if err != nil {
		return nil, err
	}
	admissible := utils.FilterByRestrictions(products, rp, false)
	ids := make(map[uint]bool, len(admissible))
	for _, p := range admissible {
		ids[p.ID] = true
	}
	return ids, nil
}

// recentlyUsedRecipeIDs collects recipe IDs linked to any plan of the user
// created inside the recency window before the generation date.
func (s *MealPlanService) recentlyUsedRecipeIDs(userID uint, date time.Time) (map[uint]bool, error) {
	from := date.AddDate(0, 0, -RecencyWindowDays)
	plans, err := s.plans.FindByUserCreatedBetween(userID, from, date)
	if err != nil {
		return nil, err
	}
	used := map[uint]bool{}
	for _, plan := range plans {
		for _, meal := range plan.Meals {
			for _, link := range meal.Recipes {
				used[link.RecipeID] = true
			}
		}
	}
	return used, nil
}

// eligibleRecipes keeps recipes not recently used whose every linked product
// is admissible. A recipe with no linked products is admissible by default.
func eligibleRecipes(catalog []models.Recipe, admissible, recent map[uint]bool) []models.Recipe {
	out := make([]models.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if recent[r.ID] {
			continue
		}
		ok := true
		for _, rp := range r.Products {
			if !admissible[rp.ProductID] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// selectForSlot greedily accumulates the nearest-by-calories recipes while
// the running totals stay inside the tolerance bands, stopping once the
// calorie floor is reached. If nothing accumulates, the single nearest
// recipe that respects the usage cap is taken regardless of macro fit.
func selectForSlot(pool []models.Recipe, target utils.Macronutrients, usedToday map[uint]int) []models.Recipe {
	sorted := make([]models.Recipe, len(pool))
	copy(sorted, pool)
	sortByCalorieDistance(sorted, target.Calories)

	var selected []models.Recipe
	var total utils.Macronutrients
	for _, r := range sorted {
		if usedToday[r.ID] >= MaxRecipeUsagePerDay {
			continue
		}
		next := utils.Macronutrients{
			Calories: total.Calories + r.Calories,
			Protein:  total.Protein + r.Protein,
			Fat:      total.Fat + r.Fat,
			Carbs:    total.Carbs + r.Carbs,
		}
		if next.Calories > target.Calories*(1+CalorieTolerance) {
			continue
		}
		if next.Protein > target.Protein*(1+MacroTolerance) ||
			next.Fat > target.Fat*(1+MacroTolerance) ||
			next.Carbs > target.Carbs*(1+MacroTolerance) {
			continue
		}
		selected = append(selected, r)
		usedToday[r.ID]++
		total = next
		if total.Calories >= target.Calories*SlotFillThreshold {
			break
		}
	}
	if len(selected) > 0 {
		return selected
	}

	// Fallback: nearest by calories, usage cap still respected.
	for _, r := range sorted {
		if usedToday[r.ID] >= MaxRecipeUsagePerDay {
			continue
		}
		usedToday[r.ID]++
		return []models.Recipe{r}
	}
	return nil
}

func sortByCalorieDistance(recipes []models.Recipe, target float64) {
	// Insertion sort keeps the original order of equal distances stable.
	for i := 1; i < len(recipes); i++ {
		for j := i; j > 0 && calorieDistance(recipes[j], target) < calorieDistance(recipes[j-1], target); j-- {
			recipes[j], recipes[j-1] = recipes[j-1], recipes[j]
		}
	}
}

func calorieDistance(r models.Recipe, target float64) float64 {
	return math.Abs(r.Calories - target)
}

func sumRecipeMacros(recipes []models.Recipe) utils.Macronutrients {
	var sum utils.Macronutrients
	for _, r := range recipes {
		sum.Calories += r.Calories
		sum.Protein += r.Protein
		sum.Fat += r.Fat
		sum.Carbs += r.Carbs
	}
	return sum
}

// scaleMacros applies the slot's calorie share proportionally to every
// macro rather than recalculating each independently.
func scaleMacros(m utils.Macronutrients, share float64) utils.Macronutrients {
	return utils.Macronutrients{
		Calories: utils.Round1(m.Calories * share),
		Protein:  utils.Round1(m.Protein * share),
		Fat:      utils.Round1(m.Fat * share),
		Carbs:    utils.Round1(m.Carbs * share),
	}
}

// portionInfo is the serialized scaling metadata stored on a meal-recipe
// link: the portion multiplier plus the resulting per-product gram amounts.
type portionInfo struct {
	Multiplier float64       `json:"multiplier"`
	Products   []portionItem `json:"products,omitempty"`
}

type portionItem struct {
	ProductID uint    `json:"product_id"`
	Grams     float64 `json:"grams"`
}

func portionMetadata(recipe models.Recipe, targetCalories float64) datatypes.JSON {
	multiplier := 1.0
	if recipe.Calories > 0 && targetCalories > 0 {
		multiplier = targetCalories / recipe.Calories
	}
	info := portionInfo{Multiplier: round2(multiplier)}
	for _, rp := range recipe.Products {
		info.Products = append(info.Products, portionItem{
			ProductID: rp.ProductID,
			Grams:     utils.Round1(rp.Grams * multiplier),
		})
	}
	b, err := json.Marshal(info)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
