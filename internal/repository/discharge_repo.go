package repository

import (
	"github.com/artiefy/clinicafix-sub000/internal/models"

	"gorm.io/gorm"
)

type DischargeRepository struct {
	db *gorm.DB
}

func NewDischargeRepo(db *gorm.DB) *DischargeRepository {
	return &DischargeRepository{db: db}
}

// GetAllDischarges retrieves the discharge audit trail, newest first
func (r *DischargeRepository) GetAllDischarges() ([]models.Discharge, error) {
	var discharges []models.Discharge
	err := r.db.Order("created_at DESC").Find(&discharges).Error
	return discharges, err
}
