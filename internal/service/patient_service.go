package service

import (
	"errors"
	"strings"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PatientService struct {
	patientRepo   *repository.PatientRepository
	dischargeRepo *repository.DischargeRepository
	log           *zap.Logger
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	dischargeRepo *repository.DischargeRepository,
	log *zap.Logger,
) *PatientService {
	return &PatientService{
		patientRepo:   patientRepo,
		dischargeRepo: dischargeRepo,
		log:           log,
	}
}

// CreatePatientInput carries the intake form. BirthDate is kept as the
// literal calendar-date string the client sent.
type CreatePatientInput struct {
	Name      string `json:"name" binding:"required"`
	BedID     *uint  `json:"bed_id"`
	Diagnosis string `json:"diagnosis"`
	Procedure string `json:"procedure"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	BloodType string `json:"blood_type"`
	BirthDate string `json:"birth_date"`
	Comment   string `json:"comment"`
}

// CreatePatient registers a new patient via intake. A patient arriving with
// a bed reference starts "con cama", otherwise "sin cama".
func (s *PatientService) CreatePatient(in CreatePatientInput) (*models.Patient, error) {
	status := models.StatusSinCama
	if in.BedID != nil {
		status = models.StatusConCama
	}

	p := &models.Patient{
		Name:            strings.TrimSpace(in.Name),
		BedID:           in.BedID,
		DischargeStatus: status,
		Diagnosis:       in.Diagnosis,
		Procedure:       in.Procedure,
		City:            in.City,
		Phone:           in.Phone,
		BloodType:       in.BloodType,
		BirthDate:       in.BirthDate,
		Comment:         in.Comment,
	}
	if err := s.patientRepo.CreatePatient(p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, err
	}

	s.log.Info("patient created", zap.Uint("patient_id", p.ID))
	return p, nil
}

// GetPatient retrieves a single patient row.
func (s *PatientService) GetPatient(id uint) (*models.Patient, error) {
	p, err := s.patientRepo.GetPatientByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPatients returns every patient, degrading to an empty list on failure.
func (s *PatientService) ListPatients() []models.Patient {
	patients, err := s.patientRepo.GetAllPatients()
	if err != nil {
		s.log.Error("failed to list patients", zap.Error(err))
		return []models.Patient{}
	}
	return patients
}

// ListDischarges returns the discharge audit trail, degrading to an empty
// list on failure.
func (s *PatientService) ListDischarges() []models.Discharge {
	discharges, err := s.dischargeRepo.GetAllDischarges()
	if err != nil {
		s.log.Error("failed to list discharges", zap.Error(err))
		return []models.Discharge{}
	}
	return discharges
}
