package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary(t *testing.T) {
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	telemetry := &fakeTelemetryRepo{rows: []models.DeviceTelemetry{
		{UserID: 1, Date: date, Steps: 7000, AvgHeartRate: 68},
	}}
	sleep := &fakeSleepRepo{rows: []models.SleepRecord{
		{UserID: 1, Date: date, TotalMinutes: 420, DeepMinutes: 100, Quality: 80},
	}}
	training := &fakeTrainingRepo{rows: []models.TrainingSession{
		{UserID: 1, Date: date, Kind: "run", DurationMinutes: 45, Intensity: 6},
	}}
	svc := NewStatsService(telemetry, sleep, training)

	out, err := svc.DailySummary(1, date)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-27", out.Date)
	assert.Equal(t, 7000, out.Steps)
	assert.InDelta(t, 68, out.AvgHeartRate, 0.1)
	assert.Equal(t, 420, out.SleepMinutes)
	assert.InDelta(t, 23.8, out.DeepSleepPct, 0.1)
	assert.InDelta(t, 80, out.SleepQuality, 0.1)
	assert.Equal(t, 45, out.TrainingMinutes)
}

func TestWeeklySummaryZeroFillsMissingDays(t *testing.T) {
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	telemetry := &fakeTelemetryRepo{rows: []models.DeviceTelemetry{
		{UserID: 1, Date: weekStart, Steps: 7000},
		{UserID: 1, Date: weekStart.AddDate(0, 0, 2), Steps: 7000},
	}}
	svc := NewStatsService(telemetry, &fakeSleepRepo{}, &fakeTrainingRepo{})

	out, err := svc.WeeklySummary(1, weekStart)
	require.NoError(t, err)
	require.Len(t, out.Days, 7)
	assert.Equal(t, 7000, out.Days[0].Steps)
	assert.Zero(t, out.Days[1].Steps)
	assert.Equal(t, 7000, out.Days[2].Steps)
	assert.Equal(t, 14000/7, out.Averages.Steps)
}

func TestCompareWeeks(t *testing.T) {
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	var rows []models.DeviceTelemetry
	for i := 0; i < 7; i++ {
		rows = append(rows, models.DeviceTelemetry{UserID: 1, Date: weekStart.AddDate(0, 0, i), Steps: 7700})
		rows = append(rows, models.DeviceTelemetry{UserID: 1, Date: weekStart.AddDate(0, 0, i-7), Steps: 7000})
	}
	svc := NewStatsService(&fakeTelemetryRepo{rows: rows}, &fakeSleepRepo{}, &fakeTrainingRepo{})

	out, err := svc.CompareWeeks(1, weekStart)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", out.WeekStart)
	assert.Equal(t, "2026-08-17", out.PrevWeekStart)
	assert.InDelta(t, 10, out.StepsChangePct, 0.1)
	// No sleep or training either week reads as unchanged.
	assert.Zero(t, out.SleepChangePct)
	assert.Zero(t, out.TrainingChangePct)
}

func TestChangePct(t *testing.T) {
	assert.InDelta(t, 10, changePct(110, 100), 0.001)
	assert.InDelta(t, -25, changePct(75, 100), 0.001)
	// No baseline: any activity counts as a full jump, none as no change.
	assert.InDelta(t, 100, changePct(50, 0), 0.001)
	assert.Zero(t, changePct(0, 0))
}
