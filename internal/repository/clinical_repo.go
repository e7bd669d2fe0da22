package repository

import (
	"errors"
	"time"

	"github.com/artiefy/clinicafix-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClinicalRepository struct {
	db *gorm.DB
}

func NewClinicalRepo(db *gorm.DB) *ClinicalRepository {
	return &ClinicalRepository{db: db}
}

// GetProceduresByPatient retrieves all procedure notes for a patient
func (r *ClinicalRepository) GetProceduresByPatient(patientID uint) ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&procedures).Error
	return procedures, err
}

// CreateProcedure appends a procedure note
func (r *ClinicalRepository) CreateProcedure(p *models.Procedure) error {
	return r.db.Create(p).Error
}

// GetPreEgresosByPatient retrieves all pre-discharge notes for a patient
func (r *ClinicalRepository) GetPreEgresosByPatient(patientID uint) ([]models.PreEgreso, error) {
	var notes []models.PreEgreso
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

// CreatePreEgreso appends a pre-discharge note
func (r *ClinicalRepository) CreatePreEgreso(n *models.PreEgreso) error {
	return r.db.Create(n).Error
}

// GetHistoryByPatient retrieves the append-only history log for a patient
func (r *ClinicalRepository) GetHistoryByPatient(patientID uint) ([]models.PatientHistory, error) {
	var entries []models.PatientHistory
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// CreateHistoryEntry appends a history log entry
func (r *ClinicalRepository) CreateHistoryEntry(e *models.PatientHistory) error {
	return r.db.Create(e).Error
}

// GetEpicrisisByPatient retrieves the latest epicrisis document for a patient
func (r *ClinicalRepository) GetEpicrisisByPatient(patientID uint) (*models.Epicrisis, error) {
	var e models.Epicrisis
	err := r.db.Where("patient_id = ?", patientID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &e, nil
}

// UpsertEpicrisis overwrites the single epicrisis document kept per patient
func (r *ClinicalRepository) UpsertEpicrisis(patientID uint, content string) (*models.Epicrisis, error) {
	e := models.Epicrisis{
		PatientID: patientID,
		Content:   content,
		UpdatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return nil, err
	}
	return r.GetEpicrisisByPatient(patientID)
}
