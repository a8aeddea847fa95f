package services

import (
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"
)

// Signal thresholds. Recomputed per correction check, never persisted.
const (
	StepsSpikePct            = 30.0  // day-over-week-average change triggering high activity
	StepsDropPct             = -30.0 // change triggering low activity
	TrainingIntensityTrigger = 20.0  // intensity change % treated as high activity
	HeartRateAbsoluteLimit   = 100.0 // bpm daily average considered anomalous outright
	HeartRateDeviationPct    = 20.0  // deviation from weekly average considered anomalous
	CriticalSleepMinutes     = 360
	CriticalDeepSleepPct     = 15.0
	CriticalSleepQuality     = 50.0
)

// ActivitySignal summarizes recent wearable data relative to the trailing
// week.
type ActivitySignal struct {
	StepsToday                 int     `json:"steps_today"`
	StepsWeeklyAvg             float64 `json:"steps_weekly_avg"`
	StepsChangePct             float64 `json:"steps_change_pct"`
	StepsSpike                 bool    `json:"steps_spike"`
	HeartRateToday             float64 `json:"heart_rate_today"`
	HeartRateAnomaly           bool    `json:"heart_rate_anomaly"`
	TrainingIntensityChangePct float64 `json:"training_intensity_change_pct"`
}

// SleepSignal summarizes the latest night against the trailing week.
type SleepSignal struct {
	Deprived        bool    `json:"deprived"`
	AvgDeepSleepPct float64 `json:"avg_deep_sleep_pct"`
	AvgQuality      float64 `json:"avg_quality"`
}

// SignalSource is what the correction engine consumes; ActivityService is
// the production implementation.
type SignalSource interface {
	AnalyzeActivity(userID uint, date time.Time) (ActivitySignal, error)
	AnalyzeSleep(userID uint, date time.Time) (SleepSignal, error)
}

type ActivityService struct {
	telemetry repository.TelemetryRepository
	sleep     repository.SleepRepository
	training  repository.TrainingRepository
}

func NewActivityService(
	telemetry repository.TelemetryRepository,
	sleep repository.SleepRepository,
	training repository.TrainingRepository,
) *ActivityService {
	return &ActivityService{telemetry: telemetry, sleep: sleep, training: training}
}

// AnalyzeActivity compares the given day's telemetry to the trailing week.
func (s *ActivityService) AnalyzeActivity(userID uint, date time.Time) (ActivitySignal, error) {
	sig := ActivitySignal{}

	today, err := s.telemetry.FindByUserBetween(userID, dayStart(date), dayStart(date).AddDate(0, 0, 1))
	if err != nil {
		return sig, err
	}
	week, err := s.telemetry.FindByUserBetween(userID, dayStart(date).AddDate(0, 0, -7), dayStart(date))
	if err != nil {
		return sig, err
	}

	var hrSum float64
	var hrCount int
	for _, t := range today {
		sig.StepsToday += t.Steps
		if t.AvgHeartRate > 0 {
			hrSum += t.AvgHeartRate
			hrCount++
		}
	}
	if hrCount > 0 {
		sig.HeartRateToday = utils.Round1(hrSum / float64(hrCount))
	}

	var weekSteps int
	var weekHRSum float64
	var weekHRCount int
	for _, t := range week {
		weekSteps += t.Steps
		if t.AvgHeartRate > 0 {
			weekHRSum += t.AvgHeartRate
			weekHRCount++
		}
	}
	if len(week) > 0 {
		sig.StepsWeeklyAvg = float64(weekSteps) / float64(len(week))
	}
	if sig.StepsWeeklyAvg > 0 {
		sig.StepsChangePct = utils.Round1((float64(sig.StepsToday) - sig.StepsWeeklyAvg) / sig.StepsWeeklyAvg * 100)
	}
	sig.StepsSpike = sig.StepsWeeklyAvg > 0 && sig.StepsChangePct > StepsSpikePct

	if sig.HeartRateToday > HeartRateAbsoluteLimit {
		sig.HeartRateAnomaly = true
	} else if weekHRCount > 0 && sig.HeartRateToday > 0 {
		weekHRAvg := weekHRSum / float64(weekHRCount)
		if (sig.HeartRateToday-weekHRAvg)/weekHRAvg*100 > HeartRateDeviationPct {
			sig.HeartRateAnomaly = true
		}
	}

	sig.TrainingIntensityChangePct, err = s.trainingIntensityChange(userID, date)
	if err != nil {
		return sig, err
	}
	return sig, nil
}

func (s *ActivityService) trainingIntensityChange(userID uint, date time.Time) (float64, error) {
	today, err := s.training.FindByUserBetween(userID, dayStart(date), dayStart(date).AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	week, err := s.training.FindByUserBetween(userID, dayStart(date).AddDate(0, 0, -7), dayStart(date))
	if err != nil {
		return 0, err
	}
	todayAvg := avgIntensity(today)
	weekAvg := avgIntensity(week)
	if weekAvg <= 0 || todayAvg <= 0 {
		return 0, nil
	}
	return utils.Round1((todayAvg - weekAvg) / weekAvg * 100), nil
}

func avgIntensity(sessions []models.TrainingSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, t := range sessions {
		sum += t.Intensity
	}
	return sum / float64(len(sessions))
}

// AnalyzeSleep flags deprivation from the latest night and averages deep
// sleep and quality across the trailing week.
func (s *ActivityService) AnalyzeSleep(userID uint, date time.Time) (SleepSignal, error) {
	sig := SleepSignal{}

	records, err := s.sleep.FindByUserBetween(userID, dayStart(date).AddDate(0, 0, -7), dayStart(date).AddDate(0, 0, 1))
	if err != nil {
		return sig, err
	}
	if len(records) == 0 {
		return sig, nil
	}

	var deepSum, qualitySum float64
	for _, r := range records {
		deepSum += deepSleepPct(r)
		qualitySum += r.Quality
	}
	sig.AvgDeepSleepPct = utils.Round1(deepSum / float64(len(records)))
	sig.AvgQuality = utils.Round1(qualitySum / float64(len(records)))

	latest := records[len(records)-1]
	sig.Deprived = IsSleepDeprived(latest)
	return sig, nil
}

// IsSleepDeprived reports deprivation: total minutes, deep-sleep share and
// quality are each individually sufficient triggers.
func IsSleepDeprived(r models.SleepRecord) bool {
	if r.TotalMinutes < CriticalSleepMinutes {
		return true
	}
	if deepSleepPct(r) < CriticalDeepSleepPct {
		return true
	}
	return r.Quality < CriticalSleepQuality
}

func deepSleepPct(r models.SleepRecord) float64 {
	if r.TotalMinutes <= 0 {
		return 0
	}
	return float64(r.DeepMinutes) / float64(r.TotalMinutes) * 100
}
