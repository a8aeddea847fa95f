package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (ctl *StatsController) queryDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (ctl *StatsController) Daily(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	date, ok := ctl.queryDate(c)
	if !ok {
		return
	}
	summary, err := ctl.stats.DailySummary(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *StatsController) Weekly(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	date, ok := ctl.queryDate(c)
	if !ok {
		return
	}
	summary, err := ctl.stats.WeeklySummary(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *StatsController) Compare(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	date, ok := ctl.queryDate(c)
	if !ok {
		return
	}
	comparison, err := ctl.stats.CompareWeeks(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}
