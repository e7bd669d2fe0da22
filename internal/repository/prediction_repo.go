package repository

import (
	"github.com/artiefy/clinicafix-sub000/internal/models"

	"gorm.io/gorm"
)

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepo(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// GetAllPredictions retrieves every forecast row
func (r *PredictionRepository) GetAllPredictions() ([]models.BedAvailabilityPrediction, error) {
	var rows []models.BedAvailabilityPrediction
	err := r.db.Order("date ASC, hora ASC, room ASC").Find(&rows).Error
	return rows, err
}

// GetPredictionsByDate retrieves forecast rows for a single date
func (r *PredictionRepository) GetPredictionsByDate(date string) ([]models.BedAvailabilityPrediction, error) {
	var rows []models.BedAvailabilityPrediction
	err := r.db.Where("date = ?", date).
		Order("hora ASC, room ASC").
		Find(&rows).Error
	return rows, err
}
