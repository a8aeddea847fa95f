package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TelemetryController struct {
	telemetry *services.TelemetryService
}

func NewTelemetryController(telemetry *services.TelemetryService) *TelemetryController {
	return &TelemetryController{telemetry: telemetry}
}

// IngestTelemetry accepts a batch of daily wearable records.
func (ctl *TelemetryController) IngestTelemetry(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}

	var items []services.TelemetryInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.telemetry.IngestBatch(userID, items); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IngestSleep accepts a batch of nightly sleep records.
func (ctl *TelemetryController) IngestSleep(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}

	var items []services.SleepInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.telemetry.IngestSleep(userID, items); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LogTraining records a workout session.
func (ctl *TelemetryController) LogTraining(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}

	var req struct {
		Date            string  `json:"date"`
		Kind            string  `json:"kind"`
		DurationMinutes int     `json:"duration_minutes"`
		Intensity       float64 `json:"intensity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	if err := ctl.telemetry.LogTraining(userID, date, req.Kind, req.DurationMinutes, req.Intensity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
