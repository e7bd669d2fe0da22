package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkflowService encodes the rules coupling a bed's operational status and
// a patient's discharge status. Every transition that touches more than one
// row (patient update + bed release + bed occupy) runs inside a single
// transaction so a crash or race cannot leave the pair half applied.
type WorkflowService struct {
	db      *gorm.DB
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewWorkflowService(db *gorm.DB, log *zap.Logger) *WorkflowService {
	return &WorkflowService{db: db, log: log}
}

// InstrumentWith attaches the metrics collector. Optional; transitions run
// the same without one.
func (s *WorkflowService) InstrumentWith(col *metrics.Collector) {
	s.metrics = col
}

// PatientChange is the decoded form of a patient update request, validated
// once at the HTTP boundary. Status is set only when the wire value is one
// of the workflow transition keywords; BedIDPresent distinguishes an absent
// bed_id key from an explicit null.
type PatientChange struct {
	Status       *models.DischargeStatus
	BedID        *uint
	BedIDPresent bool
	Fields       map[string]interface{}
}

// TransitionResult reports the outcome of a patient transition.
// AuditRecorded is false when the discharge audit insert failed; the
// transition itself still succeeded.
type TransitionResult struct {
	Patient       *models.Patient
	AuditRecorded bool
}

// personalFields is the whitelist for the generic patient patch. Unknown
// keys are dropped silently at the boundary and again here.
var personalFields = map[string]bool{
	"name":       true,
	"diagnosis":  true,
	"procedure":  true,
	"city":       true,
	"phone":      true,
	"blood_type": true,
	"birth_date": true,
	"comment":    true,
}

// ChangeBedStatus applies a board-requested bed status change. Freeing a
// bed (Disponible or Limpieza) is rejected while a non-discharged patient
// still references it; a lingering "de alta" occupant is detached instead.
func (s *WorkflowService) ChangeBedStatus(ctx context.Context, bedID uint, newStatus models.BedStatus) error {
	if !newStatus.Selectable() {
		return ErrInvalidBedStatus
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bed models.Bed
		if err := tx.First(&bed, bedID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBedNotFound
			}
			return err
		}

		var occupant models.Patient
		err := tx.Where("bed_id = ?", bedID).First(&occupant).Error
		switch {
		case err == nil:
			if newStatus.Frees() {
				if !occupant.DischargeStatus.Discharged() {
					return ErrBedOccupied
				}
				// The discharge flow should already have detached the
				// patient; clear the stale reference before freeing.
				if err := tx.Model(&models.Patient{}).
					Where("id = ?", occupant.ID).
					Update("bed_id", nil).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// empty bed
		default:
			return err
		}

		if err := setBedStatus(tx, bedID, newStatus); err != nil {
			return err
		}

		s.log.Info("bed status changed",
			zap.Uint("bed_id", bedID),
			zap.String("status", string(newStatus)),
		)
		return nil
	})
}

// ChangePatientStatus dispatches a patient update. Exactly one branch
// fires, checked in fixed order: de alta, sin cama, con cama,
// diagnosticos_procedimientos, pre-egreso, bare bed_id reassignment, then
// the whitelisted personal-field patch.
func (s *WorkflowService) ChangePatientStatus(ctx context.Context, patientID uint, change PatientChange) (*TransitionResult, error) {
	// Reject before any write so a bad request cannot mutate rows.
	if change.Status != nil && *change.Status == models.StatusConCama && change.BedID == nil {
		return nil, ErrBedRequired
	}

	res := &TransitionResult{AuditRecorded: true}
	var target string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Patient
		if err := tx.First(&p, patientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return err
		}

		var err error
		switch {
		case change.Status != nil && *change.Status == models.StatusDeAlta:
			target = string(models.StatusDeAlta)
			err = s.discharge(tx, &p, res)
		case change.Status != nil && *change.Status == models.StatusSinCama:
			target = string(models.StatusSinCama)
			err = s.unassignBed(tx, &p)
		case change.Status != nil && *change.Status == models.StatusConCama:
			target = string(models.StatusConCama)
			err = s.assignBed(tx, &p, *change.BedID)
		case change.Status != nil && *change.Status == models.StatusDiagnostico:
			target = string(models.StatusDiagnostico)
			err = s.markInPlace(tx, &p, models.StatusDiagnostico, models.BedDiagnostico)
		case change.Status != nil && *change.Status == models.StatusPreEgreso:
			target = string(models.StatusPreEgreso)
			err = s.markInPlace(tx, &p, models.StatusPreEgreso, models.BedPreEgreso)
		case change.BedIDPresent && change.BedID == nil:
			target = "bed_unassign"
			err = s.unassignBed(tx, &p)
		case change.BedIDPresent:
			target = "bed_assign"
			err = s.assignBed(tx, &p, *change.BedID)
		default:
			target = "fields"
			err = s.patchPersonalFields(tx, &p, change.Fields)
		}
		if err != nil {
			return err
		}

		res.Patient = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.TransitionsTotal.WithLabelValues(target).Inc()
	}
	return res, nil
}

// UpdatePersonalFields applies the whitelisted personal-field patch without
// touching the workflow state.
func (s *WorkflowService) UpdatePersonalFields(ctx context.Context, patientID uint, fields map[string]interface{}) (*models.Patient, error) {
	res, err := s.ChangePatientStatus(ctx, patientID, PatientChange{Fields: fields})
	if err != nil {
		return nil, err
	}
	return res.Patient, nil
}

// discharge marks the patient "de alta": bed reference cleared, the vacated
// bed sent to cleaning, and one best-effort audit row written. A failed
// audit insert is logged and surfaced on the result, never fatal.
func (s *WorkflowService) discharge(tx *gorm.DB, p *models.Patient, res *TransitionResult) error {
	prevBed := p.BedID

	if err := tx.Model(p).Updates(map[string]interface{}{
		"discharge_status": models.StatusDeAlta,
		"bed_id":           nil,
	}).Error; err != nil {
		return err
	}
	p.DischargeStatus = models.StatusDeAlta
	p.BedID = nil

	if prevBed != nil {
		if err := setBedStatus(tx, *prevBed, models.BedLimpieza); err != nil {
			return err
		}
	}

	now := time.Now()
	d := models.Discharge{
		PatientName: p.Name,
		BedID:       prevBed,
		Status:      "Alta",
		ExpectedAt:  &now,
	}
	if err := tx.Create(&d).Error; err != nil {
		res.AuditRecorded = false
		s.log.Warn("discharge audit insert failed",
			zap.Uint("patient_id", p.ID),
			zap.Error(err),
		)
		// Best effort as well: make the gap visible on the dashboard.
		_ = tx.Create(&models.Alert{
			BedID:   prevBed,
			Level:   "warning",
			Message: fmt.Sprintf("Alta de %s sin registro de auditoría", p.Name),
		}).Error
		if s.metrics != nil {
			s.metrics.AuditFailures.Inc()
		}
	}

	s.log.Info("patient discharged", zap.Uint("patient_id", p.ID))
	return nil
}

// unassignBed detaches the patient from their bed and releases it.
func (s *WorkflowService) unassignBed(tx *gorm.DB, p *models.Patient) error {
	prevBed := p.BedID

	if err := tx.Model(p).Updates(map[string]interface{}{
		"discharge_status": models.StatusSinCama,
		"bed_id":           nil,
	}).Error; err != nil {
		return err
	}
	p.DischargeStatus = models.StatusSinCama
	p.BedID = nil

	if prevBed != nil {
		return setBedStatus(tx, *prevBed, models.BedDisponible)
	}
	return nil
}

// assignBed moves the patient onto newBedID. Releasing the previous bed and
// occupying the new one happen in the same transaction as the patient
// update, so the pair can never be observed half applied.
func (s *WorkflowService) assignBed(tx *gorm.DB, p *models.Patient, newBedID uint) error {
	var bed models.Bed
	if err := tx.First(&bed, newBedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBedNotFound
		}
		return err
	}

	prevBed := p.BedID

	if err := tx.Model(p).Updates(map[string]interface{}{
		"discharge_status": models.StatusConCama,
		"bed_id":           newBedID,
	}).Error; err != nil {
		return err
	}
	p.DischargeStatus = models.StatusConCama
	p.BedID = &newBedID

	if prevBed != nil && *prevBed != newBedID {
		if err := setBedStatus(tx, *prevBed, models.BedDisponible); err != nil {
			return err
		}
	}
	return setBedStatus(tx, newBedID, models.BedAtencionMedica)
}

// markInPlace updates the discharge status without moving the patient; the
// current bed, if any, mirrors the clinical phase.
func (s *WorkflowService) markInPlace(tx *gorm.DB, p *models.Patient, status models.DischargeStatus, bedStatus models.BedStatus) error {
	if err := tx.Model(p).Update("discharge_status", status).Error; err != nil {
		return err
	}
	p.DischargeStatus = status

	if p.BedID != nil {
		return setBedStatus(tx, *p.BedID, bedStatus)
	}
	return nil
}

// patchPersonalFields applies the whitelisted partial update.
func (s *WorkflowService) patchPersonalFields(tx *gorm.DB, p *models.Patient, fields map[string]interface{}) error {
	updates := make(map[string]interface{})
	for k, v := range fields {
		if personalFields[k] {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return ErrNoChanges
	}
	return tx.Model(p).Updates(updates).Error
}

// setBedStatus writes a bed status and refreshes last_update.
func setBedStatus(tx *gorm.DB, bedID uint, status models.BedStatus) error {
	return tx.Model(&models.Bed{}).
		Where("id = ?", bedID).
		Updates(map[string]interface{}{
			"status":      status,
			"last_update": time.Now(),
		}).Error
}
