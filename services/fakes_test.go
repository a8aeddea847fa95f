package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mimic the gorm implementations closely
// enough for the engine: auto-assigned IDs, gorm.ErrRecordNotFound on
// misses, CreatedAt stamped on create.

type fakeProfileRepo struct {
	profiles map[uint]*models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]*models.UserProfile{}}
}

func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.UserProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Save(profile *models.UserProfile) error {
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

type fakeProductRepo struct {
	products []models.Product
}

func (r *fakeProductRepo) FindAll() ([]models.Product, error) {
	return append([]models.Product(nil), r.products...), nil
}

type fakeRecipeRepo struct {
	recipes []models.Recipe
}

func (r *fakeRecipeRepo) FindAll() ([]models.Recipe, error) {
	return append([]models.Recipe(nil), r.recipes...), nil
}

func (r *fakeRecipeRepo) FindByIDWithProducts(id uint) (*models.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ID == id {
			cp := rec
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePlanRepo struct {
	nextID uint
	plans  map[uint]*models.DailyDietPlan
	meals  map[uint]*models.Meal
	links  map[uint]*models.MealRecipe
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		plans: map[uint]*models.DailyDietPlan{},
		meals: map[uint]*models.Meal{},
		links: map[uint]*models.MealRecipe{},
	}
}

func (r *fakePlanRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakePlanRepo) Create(plan *models.DailyDietPlan) error {
	if plan.ID == 0 {
		plan.ID = r.id()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	cp := *plan
	cp.Meals = nil
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) FindByID(id uint) (*models.DailyDietPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) FindByIDWithMeals(id uint) (*models.DailyDietPlan, error) {
	plan, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	meals, err := r.FindMealsByPlanID(id)
	if err != nil {
		return nil, err
	}
	plan.Meals = meals
	return plan, nil
}

func (r *fakePlanRepo) FindByUserCreatedBetween(userID uint, from, to time.Time) ([]models.DailyDietPlan, error) {
	var out []models.DailyDietPlan
	for id, p := range r.plans {
		if p.UserID != userID || p.CreatedAt.Before(from) || !p.CreatedAt.Before(to) {
			continue
		}
		withMeals, err := r.FindByIDWithMeals(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *withMeals)
	}
	return out, nil
}

func (r *fakePlanRepo) Update(plan *models.DailyDietPlan) error {
	cp := *plan
	cp.Meals = nil
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) CreateMeal(meal *models.Meal) error {
	if meal.ID == 0 {
		meal.ID = r.id()
	}
	cp := *meal
	cp.Recipes = nil
	r.meals[meal.ID] = &cp
	return nil
}

func (r *fakePlanRepo) UpdateMeal(meal *models.Meal) error {
	cp := *meal
	cp.Recipes = nil
	r.meals[meal.ID] = &cp
	return nil
}

func (r *fakePlanRepo) FindMealsByPlanID(planID uint) ([]models.Meal, error) {
	var out []models.Meal
	for _, m := range r.meals {
		if m.PlanID != planID {
			continue
		}
		meal := *m
		for _, l := range r.links {
			if l.MealID == meal.ID {
				meal.Recipes = append(meal.Recipes, *l)
			}
		}
		out = append(out, meal)
	}
	// Stable slot order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Position < out[j-1].Position; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *fakePlanRepo) CreateMealRecipe(link *models.MealRecipe) error {
	if link.ID == 0 {
		link.ID = r.id()
	}
	cp := *link
	r.links[link.ID] = &cp
	return nil
}

func (r *fakePlanRepo) UpdateMealRecipe(link *models.MealRecipe) error {
	cp := *link
	r.links[link.ID] = &cp
	return nil
}

type fakeRecommendationRepo struct {
	nextID uint
	recs   map[uint]*models.Recommendation
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{recs: map[uint]*models.Recommendation{}}
}

func (r *fakeRecommendationRepo) Create(rec *models.Recommendation) error {
	if rec.ID == 0 {
		r.nextID++
		rec.ID = r.nextID
	}
	cp := *rec
	r.recs[rec.ID] = &cp
	return nil
}

func (r *fakeRecommendationRepo) FindByID(id uint) (*models.Recommendation, error) {
	rec, ok := r.recs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecommendationRepo) FindByUserID(userID uint) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, rec := range r.recs {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecommendationRepo) Update(rec *models.Recommendation) error {
	cp := *rec
	r.recs[rec.ID] = &cp
	return nil
}

type fakeTelemetryRepo struct {
	rows []models.DeviceTelemetry
}

func (r *fakeTelemetryRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.DeviceTelemetry, error) {
	var out []models.DeviceTelemetry
	for _, row := range r.rows {
		if row.UserID == userID && !row.Date.Before(from) && row.Date.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTelemetryRepo) UpsertBatch(records []models.DeviceTelemetry) error {
	for _, rec := range records {
		replaced := false
		for i, row := range r.rows {
			if row.UserID == rec.UserID && row.Date.Equal(rec.Date) {
				r.rows[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			r.rows = append(r.rows, rec)
		}
	}
	return nil
}

type fakeSleepRepo struct {
	rows []models.SleepRecord
}

func (r *fakeSleepRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.SleepRecord, error) {
	var out []models.SleepRecord
	for _, row := range r.rows {
		if row.UserID == userID && !row.Date.Before(from) && row.Date.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeSleepRepo) UpsertBatch(records []models.SleepRecord) error {
	for _, rec := range records {
		replaced := false
		for i, row := range r.rows {
			if row.UserID == rec.UserID && row.Date.Equal(rec.Date) {
				r.rows[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			r.rows = append(r.rows, rec)
		}
	}
	return nil
}

type fakeTrainingRepo struct {
	rows []models.TrainingSession
}

func (r *fakeTrainingRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.TrainingSession, error) {
	var out []models.TrainingSession
	for _, row := range r.rows {
		if row.UserID == userID && !row.Date.Before(from) && row.Date.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTrainingRepo) Create(session *models.TrainingSession) error {
	r.rows = append(r.rows, *session)
	return nil
}

// stubSignals feeds fixed signals into the correction engine.
type stubSignals struct {
	activity ActivitySignal
	sleep    SleepSignal
}

func (s *stubSignals) AnalyzeActivity(userID uint, date time.Time) (ActivitySignal, error) {
	return s.activity, nil
}

func (s *stubSignals) AnalyzeSleep(userID uint, date time.Time) (SleepSignal, error) {
	return s.sleep, nil
}
