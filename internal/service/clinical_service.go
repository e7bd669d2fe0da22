package service

import (
	"encoding/json"
	"errors"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidEpicrisis rejects epicrisis bodies that are not valid JSON.
var ErrInvalidEpicrisis = errors.New("el documento de epicrisis debe ser JSON válido")

// ClinicalService manages the per-patient clinical records: procedures,
// pre-discharge notes, diagnosis text, the history log, and the epicrisis
// document.
type ClinicalService struct {
	clinicalRepo *repository.ClinicalRepository
	patientRepo  *repository.PatientRepository
	log          *zap.Logger
}

func NewClinicalService(
	clinicalRepo *repository.ClinicalRepository,
	patientRepo *repository.PatientRepository,
	log *zap.Logger,
) *ClinicalService {
	return &ClinicalService{
		clinicalRepo: clinicalRepo,
		patientRepo:  patientRepo,
		log:          log,
	}
}

func (s *ClinicalService) requirePatient(patientID uint) (*models.Patient, error) {
	p, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListProcedures returns a patient's procedure notes.
func (s *ClinicalService) ListProcedures(patientID uint) ([]models.Procedure, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	return s.clinicalRepo.GetProceduresByPatient(patientID)
}

// AddProcedure appends a procedure note and mirrors it into the history log.
func (s *ClinicalService) AddProcedure(patientID uint, description string) (*models.Procedure, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	p := &models.Procedure{PatientID: patientID, Description: description}
	if err := s.clinicalRepo.CreateProcedure(p); err != nil {
		return nil, err
	}
	s.appendHistory(patientID, "Procedimiento: "+description)
	return p, nil
}

// ListPreEgresos returns a patient's pre-discharge notes.
func (s *ClinicalService) ListPreEgresos(patientID uint) ([]models.PreEgreso, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	return s.clinicalRepo.GetPreEgresosByPatient(patientID)
}

// AddPreEgreso appends a pre-discharge note and mirrors it into the history
// log.
func (s *ClinicalService) AddPreEgreso(patientID uint, note string) (*models.PreEgreso, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	n := &models.PreEgreso{PatientID: patientID, Note: note}
	if err := s.clinicalRepo.CreatePreEgreso(n); err != nil {
		return nil, err
	}
	s.appendHistory(patientID, "Pre-egreso: "+note)
	return n, nil
}

// GetDiagnosis returns the patient's accumulated diagnosis text.
func (s *ClinicalService) GetDiagnosis(patientID uint) (string, error) {
	p, err := s.requirePatient(patientID)
	if err != nil {
		return "", err
	}
	return p.Diagnosis, nil
}

// AppendDiagnosis appends text to the patient's diagnosis field.
func (s *ClinicalService) AppendDiagnosis(patientID uint, text string) (*models.Patient, error) {
	p, err := s.requirePatient(patientID)
	if err != nil {
		return nil, err
	}

	diagnosis := text
	if p.Diagnosis != "" {
		diagnosis = p.Diagnosis + "\n" + text
	}
	if err := s.patientRepo.UpdatePatientFields(patientID, map[string]interface{}{
		"diagnosis": diagnosis,
	}); err != nil {
		return nil, err
	}
	p.Diagnosis = diagnosis

	s.appendHistory(patientID, "Diagnóstico: "+text)
	return p, nil
}

// ListHistory returns the patient's append-only history log.
func (s *ClinicalService) ListHistory(patientID uint) ([]models.PatientHistory, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	return s.clinicalRepo.GetHistoryByPatient(patientID)
}

// AddHistoryEntry appends a free-form note to the history log.
func (s *ClinicalService) AddHistoryEntry(patientID uint, note string) (*models.PatientHistory, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	e := &models.PatientHistory{PatientID: patientID, Note: note}
	if err := s.clinicalRepo.CreateHistoryEntry(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEpicrisis returns the patient's current epicrisis document, or nil
// when none has been written yet.
func (s *ClinicalService) GetEpicrisis(patientID uint) (*models.Epicrisis, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	e, err := s.clinicalRepo.GetEpicrisisByPatient(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// SaveEpicrisis overwrites the patient's epicrisis document. The body must
// be a valid JSON document; it is stored as serialized text.
func (s *ClinicalService) SaveEpicrisis(patientID uint, content []byte) (*models.Epicrisis, error) {
	if _, err := s.requirePatient(patientID); err != nil {
		return nil, err
	}
	if !json.Valid(content) {
		return nil, ErrInvalidEpicrisis
	}
	return s.clinicalRepo.UpsertEpicrisis(patientID, string(content))
}

// appendHistory mirrors clinical writes into the history log. Best effort:
// a failure is logged, the parent write stands.
func (s *ClinicalService) appendHistory(patientID uint, note string) {
	err := s.clinicalRepo.CreateHistoryEntry(&models.PatientHistory{
		PatientID: patientID,
		Note:      note,
	})
	if err != nil {
		s.log.Warn("history append failed",
			zap.Uint("patient_id", patientID),
			zap.Error(err),
		)
	}
}
