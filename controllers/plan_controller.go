package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	mealPlans   *services.MealPlanService
	corrections *services.CorrectionService
}

func NewPlanController(mealPlans *services.MealPlanService, corrections *services.CorrectionService) *PlanController {
	return &PlanController{mealPlans: mealPlans, corrections: corrections}
}

// GeneratePlan creates a daily plan for the user.
func (ctl *PlanController) GeneratePlan(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}

	var req struct {
		Date       string `json:"date"` // YYYY-MM-DD, defaults to today
		TemplateID *uint  `json:"template_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	plan, err := ctl.mealPlans.GenerateMealPlan(userID, date, req.TemplateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// CheckCorrections runs the correction engine against a plan.
func (ctl *PlanController) CheckCorrections(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	planID, ok := paramUint(c, "planId")
	if !ok {
		return
	}

	recs, err := ctl.corrections.CheckAndSuggestCorrections(userID, planID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// ApplyCorrection applies a previously suggested correction to a plan.
func (ctl *PlanController) ApplyCorrection(c *gin.Context) {
	planID, ok := paramUint(c, "planId")
	if !ok {
		return
	}
	recID, ok := paramUint(c, "recId")
	if !ok {
		return
	}

	plan, err := ctl.corrections.ApplyCorrection(planID, recID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
