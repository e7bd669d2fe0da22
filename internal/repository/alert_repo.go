package repository

import (
	"github.com/artiefy/clinicafix-sub000/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetAllAlerts retrieves dashboard alerts, newest first
func (r *AlertRepository) GetAllAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}
