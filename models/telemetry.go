package models

import (
	"time"

	"gorm.io/gorm"
)

// DeviceTelemetry is one day of wearable data, upserted by (user, date).
type DeviceTelemetry struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	Date         time.Time `gorm:"index;not null"` // truncated to local midnight
	Steps        int
	AvgHeartRate float64
}

// SleepRecord is one night of sleep data.
type SleepRecord struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	Date         time.Time `gorm:"index;not null"`
	TotalMinutes int
	DeepMinutes  int
	Quality      float64 // 0-100
}

// TrainingSession is a logged workout; intensity feeds the correction engine.
type TrainingSession struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"`
	Date            time.Time `gorm:"index;not null"`
	Kind            string    `gorm:"size:32"`
	DurationMinutes int
	Intensity       float64 // 0-10 perceived scale
}
