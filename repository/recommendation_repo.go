package repository

import (
	"backend/models"

	"gorm.io/gorm"
)

type recommendationRepo struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) RecommendationRepository {
	return &recommendationRepo{db: db}
}

func (r *recommendationRepo) Create(rec *models.Recommendation) error {
	return r.db.Create(rec).Error
}

func (r *recommendationRepo) FindByID(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepo) FindByUserID(userID uint) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *recommendationRepo) Update(rec *models.Recommendation) error {
	return r.db.Save(rec).Error
}
