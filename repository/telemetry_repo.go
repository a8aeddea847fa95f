package repository

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type telemetryRepo struct {
	db *gorm.DB
}

func NewTelemetryRepo(db *gorm.DB) TelemetryRepository {
	return &telemetryRepo{db: db}
}

func (r *telemetryRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.DeviceTelemetry, error) {
	var rows []models.DeviceTelemetry
	err := r.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// UpsertBatch upserts by (user_id, date) inside one transaction; a failure
// on any row rolls back the whole batch.
func (r *telemetryRepo) UpsertBatch(records []models.DeviceTelemetry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			row := rec
			if err := tx.
				Where("user_id = ? AND date = ?", rec.UserID, rec.Date).
				Assign(models.DeviceTelemetry{Steps: rec.Steps, AvgHeartRate: rec.AvgHeartRate}).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type sleepRepo struct {
	db *gorm.DB
}

func NewSleepRepo(db *gorm.DB) SleepRepository {
	return &sleepRepo{db: db}
}

func (r *sleepRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.SleepRecord, error) {
	var rows []models.SleepRecord
	err := r.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *sleepRepo) UpsertBatch(records []models.SleepRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			row := rec
			if err := tx.
				Where("user_id = ? AND date = ?", rec.UserID, rec.Date).
				Assign(models.SleepRecord{
					TotalMinutes: rec.TotalMinutes,
					DeepMinutes:  rec.DeepMinutes,
					Quality:      rec.Quality,
				}).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type trainingRepo struct {
	db *gorm.DB
}

func NewTrainingRepo(db *gorm.DB) TrainingRepository {
	return &trainingRepo{db: db}
}

func (r *trainingRepo) FindByUserBetween(userID uint, from, to time.Time) ([]models.TrainingSession, error) {
	var rows []models.TrainingSession
	err := r.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *trainingRepo) Create(session *models.TrainingSession) error {
	return r.db.Create(session).Error
}
