package repository

import (
	"errors"
	"time"

	"github.com/artiefy/clinicafix-sub000/internal/models"

	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepo(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

// GetAllBeds retrieves all beds with their rooms, ordered for the board
func (r *BedRepository) GetAllBeds() ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Preload("Room").
		Order("room_id ASC, id ASC").
		Find(&beds).Error
	return beds, err
}

// GetBedByID retrieves a bed by ID
func (r *BedRepository) GetBedByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &bed, nil
}

// UpdateBedFields applies a partial update and refreshes last_update
func (r *BedRepository) UpdateBedFields(id uint, updates map[string]interface{}) error {
	updates["last_update"] = time.Now()
	return r.db.Model(&models.Bed{}).
		Where("id = ?", id).
		Updates(updates).Error
}
