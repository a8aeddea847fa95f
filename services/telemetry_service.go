package services

import (
	"fmt"
	"time"

	"backend/models"
	"backend/repository"
)

// TelemetryInput is one day of wearable data from a device sync.
type TelemetryInput struct {
	Date         time.Time `json:"date"`
	Steps        int       `json:"steps"`
	AvgHeartRate float64   `json:"avg_heart_rate"`
}

// SleepInput is one night of sleep data.
type SleepInput struct {
	Date         time.Time `json:"date"`
	TotalMinutes int       `json:"total_minutes"`
	DeepMinutes  int       `json:"deep_minutes"`
	Quality      float64   `json:"quality"`
}

type TelemetryService struct {
	telemetry repository.TelemetryRepository
	sleep     repository.SleepRepository
	training  repository.TrainingRepository
}

func NewTelemetryService(
	telemetry repository.TelemetryRepository,
	sleep repository.SleepRepository,
	training repository.TrainingRepository,
) *TelemetryService {
	return &TelemetryService{telemetry: telemetry, sleep: sleep, training: training}
}

// IngestBatch validates every record, then upserts the whole batch in one
// transaction (the repository rolls back on any failure). Validation errors
// reject the batch before anything is written.
func (s *TelemetryService) IngestBatch(userID uint, items []TelemetryInput) error {
	records := make([]models.DeviceTelemetry, 0, len(items))
	for i, it := range items {
		if it.Date.IsZero() {
			return fmt.Errorf("%w: record %d has no date", ErrInvalidArgument, i)
		}
		if it.Steps < 0 {
			return fmt.Errorf("%w: record %d has negative steps", ErrInvalidArgument, i)
		}
		if it.AvgHeartRate != 0 && (it.AvgHeartRate < 25 || it.AvgHeartRate > 250) {
			return fmt.Errorf("%w: record %d heart rate out of range", ErrInvalidArgument, i)
		}
		records = append(records, models.DeviceTelemetry{
			UserID:       userID,
			Date:         dayStart(it.Date),
			Steps:        it.Steps,
			AvgHeartRate: it.AvgHeartRate,
		})
	}
	if len(records) == 0 {
		return nil
	}
	return s.telemetry.UpsertBatch(records)
}

// IngestSleep is the sleep counterpart of IngestBatch.
func (s *TelemetryService) IngestSleep(userID uint, items []SleepInput) error {
	records := make([]models.SleepRecord, 0, len(items))
	for i, it := range items {
		if it.Date.IsZero() {
			return fmt.Errorf("%w: record %d has no date", ErrInvalidArgument, i)
		}
		if it.TotalMinutes < 0 || it.DeepMinutes < 0 || it.DeepMinutes > it.TotalMinutes {
			return fmt.Errorf("%w: record %d has inconsistent sleep minutes", ErrInvalidArgument, i)
		}
		if it.Quality < 0 || it.Quality > 100 {
			return fmt.Errorf("%w: record %d quality out of range", ErrInvalidArgument, i)
		}
		records = append(records, models.SleepRecord{
			UserID:       userID,
			Date:         dayStart(it.Date),
			TotalMinutes: it.TotalMinutes,
			DeepMinutes:  it.DeepMinutes,
			Quality:      it.Quality,
		})
	}
	if len(records) == 0 {
		return nil
	}
	return s.sleep.UpsertBatch(records)
}

// LogTraining records a workout session.
func (s *TelemetryService) LogTraining(userID uint, date time.Time, kind string, durationMinutes int, intensity float64) error {
	if date.IsZero() {
		return fmt.Errorf("%w: training session has no date", ErrInvalidArgument)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: training duration must be positive", ErrInvalidArgument)
	}
	if intensity < 0 || intensity > 10 {
		return fmt.Errorf("%w: training intensity out of range", ErrInvalidArgument)
	}
	return s.training.Create(&models.TrainingSession{
		UserID:          userID,
		Date:            dayStart(date),
		Kind:            kind,
		DurationMinutes: durationMinutes,
		Intensity:       intensity,
	})
}
