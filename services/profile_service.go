package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/repository"

	"gorm.io/gorm"
)

// ProfileInput is the onboarding payload for a user profile.
type ProfileInput struct {
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	Sex           string  `json:"sex"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Restrictions  string  `json:"restrictions"`
	Locale        string  `json:"locale"`
}

type ProfileService struct {
	profiles repository.ProfileRepository
	recs     repository.RecommendationRepository
}

func NewProfileService(profiles repository.ProfileRepository, recs repository.RecommendationRepository) *ProfileService {
	return &ProfileService{profiles: profiles, recs: recs}
}

// GetProfile returns the profile for a user.
func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return profile, nil
}

// UpsertProfile creates or updates the profile. Height and weight must be
// positive and the birth date must parse; the generator depends on both.
func (s *ProfileService) UpsertProfile(userID uint, input ProfileInput) (*models.UserProfile, error) {
	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		return nil, fmt.Errorf("%w: birthday must be YYYY-MM-DD", ErrInvalidArgument)
	}
	if input.HeightCm <= 0 || input.WeightKg <= 0 {
		return nil, fmt.Errorf("%w: height and weight must be positive", ErrInvalidArgument)
	}

	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.UserProfile{UserID: userID}
	}

	profile.Birthday = birthday
	profile.Sex = input.Sex
	profile.HeightCm = input.HeightCm
	profile.WeightKg = input.WeightKg
	profile.ActivityLevel = input.ActivityLevel
	profile.Goal = input.Goal
	profile.Restrictions = input.Restrictions
	if input.Locale != "" {
		profile.Locale = input.Locale
	}

	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListRecommendations returns a user's recommendations, newest first.
func (s *ProfileService) ListRecommendations(userID uint) ([]models.Recommendation, error) {
	return s.recs.FindByUserID(userID)
}

// MarkRecommendationRead moves a new recommendation to read; applied ones
// stay applied.
func (s *ProfileService) MarkRecommendationRead(id uint) (*models.Recommendation, error) {
	rec, err := s.recs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recommendation %d", ErrNotFound, id)
		}
		return nil, err
	}
	if rec.Status == models.RecommendationNew {
		rec.Status = models.RecommendationRead
		if err := s.recs.Update(rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
