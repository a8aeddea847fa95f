package services

import (
	"time"

	"backend/repository"
	"backend/utils"
)

// DailySummary is one day's telemetry rollup.
type DailySummary struct {
	Date            string  `json:"date"`
	Steps           int     `json:"steps"`
	AvgHeartRate    float64 `json:"avg_heart_rate"`
	SleepMinutes    int     `json:"sleep_minutes"`
	DeepSleepPct    float64 `json:"deep_sleep_pct"`
	SleepQuality    float64 `json:"sleep_quality"`
	TrainingMinutes int     `json:"training_minutes"`
}

// WeeklySummary is seven daily rollups plus averages; missing days appear
// as zero rows so charts stay aligned.
type WeeklySummary struct {
	WeekStart string         `json:"week_start"`
	Days      []DailySummary `json:"days"`
	Averages  DailySummary   `json:"averages"`
}

// WeekComparison is week-over-week change in percent.
type WeekComparison struct {
	WeekStart         string  `json:"week_start"`
	PrevWeekStart     string  `json:"prev_week_start"`
	StepsChangePct    float64 `json:"steps_change_pct"`
	SleepChangePct    float64 `json:"sleep_change_pct"`
	TrainingChangePct float64 `json:"training_change_pct"`
}

type StatsService struct {
	telemetry repository.TelemetryRepository
	sleep     repository.SleepRepository
	training  repository.TrainingRepository
}

func NewStatsService(
	telemetry repository.TelemetryRepository,
	sleep repository.SleepRepository,
	training repository.TrainingRepository,
) *StatsService {
	return &StatsService{telemetry: telemetry, sleep: sleep, training: training}
}

// DailySummary aggregates one day of telemetry, sleep and training.
func (s *StatsService) DailySummary(userID uint, date time.Time) (*DailySummary, error) {
	from := dayStart(date)
	to := from.AddDate(0, 0, 1)

	telemetry, err := s.telemetry.FindByUserBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleep.FindByUserBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	training, err := s.training.FindByUserBetween(userID, from, to)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{Date: from.Format("2006-01-02")}
	var hrSum float64
	var hrCount int
	for _, t := range telemetry {
		out.Steps += t.Steps
		if t.AvgHeartRate > 0 {
			hrSum += t.AvgHeartRate
			hrCount++
		}
	}
	if hrCount > 0 {
		out.AvgHeartRate = utils.Round1(hrSum / float64(hrCount))
	}
	for _, r := range sleep {
		out.SleepMinutes += r.TotalMinutes
		out.DeepSleepPct = utils.Round1(deepSleepPct(r))
		out.SleepQuality = r.Quality
	}
	for _, t := range training {
		out.TrainingMinutes += t.DurationMinutes
	}
	return out, nil
}

// WeeklySummary builds the seven-day rollup starting at weekStart.
func (s *StatsService) WeeklySummary(userID uint, weekStart time.Time) (*WeeklySummary, error) {
	from := dayStart(weekStart)
	out := &WeeklySummary{WeekStart: from.Format("2006-01-02")}

	var stepsSum, sleepSum, trainingSum int
	var hrSum, deepSum, qualitySum float64
	var hrCount int
	for i := 0; i < 7; i++ {
		day, err := s.DailySummary(userID, from.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		out.Days = append(out.Days, *day)
		stepsSum += day.Steps
		sleepSum += day.SleepMinutes
		trainingSum += day.TrainingMinutes
		deepSum += day.DeepSleepPct
		qualitySum += day.SleepQuality
		if day.AvgHeartRate > 0 {
			hrSum += day.AvgHeartRate
			hrCount++
		}
	}

	out.Averages = DailySummary{
		Date:            out.WeekStart,
		Steps:           stepsSum / 7,
		SleepMinutes:    sleepSum / 7,
		TrainingMinutes: trainingSum / 7,
		DeepSleepPct:    utils.Round1(deepSum / 7),
		SleepQuality:    utils.Round1(qualitySum / 7),
	}
	if hrCount > 0 {
		out.Averages.AvgHeartRate = utils.Round1(hrSum / float64(hrCount))
	}
	return out, nil
}

// CompareWeeks compares the week starting at weekStart with the one before.
func (s *StatsService) CompareWeeks(userID uint, weekStart time.Time) (*WeekComparison, error) {
	current, err := s.WeeklySummary(userID, weekStart)
	if err != nil {
		return nil, err
	}
	previous, err := s.WeeklySummary(userID, dayStart(weekStart).AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &WeekComparison{
		WeekStart:         current.WeekStart,
		PrevWeekStart:     previous.WeekStart,
		StepsChangePct:    changePct(float64(current.Averages.Steps), float64(previous.Averages.Steps)),
		SleepChangePct:    changePct(float64(current.Averages.SleepMinutes), float64(previous.Averages.SleepMinutes)),
		TrainingChangePct: changePct(float64(current.Averages.TrainingMinutes), float64(previous.Averages.TrainingMinutes)),
	}, nil
}

func changePct(current, previous float64) float64 {
	if previous <= 0 {
		if current <= 0 {
			return 0
		}
		return 100
	}
	return utils.Round1((current - previous) / previous * 100)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
