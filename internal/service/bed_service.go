package service

import (
	"errors"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BedService struct {
	bedRepo   *repository.BedRepository
	roomRepo  *repository.RoomRepository
	alertRepo *repository.AlertRepository
	log       *zap.Logger
}

func NewBedService(
	bedRepo *repository.BedRepository,
	roomRepo *repository.RoomRepository,
	alertRepo *repository.AlertRepository,
	log *zap.Logger,
) *BedService {
	return &BedService{
		bedRepo:   bedRepo,
		roomRepo:  roomRepo,
		alertRepo: alertRepo,
		log:       log,
	}
}

// ListBeds returns every bed for the board. Read failures degrade to an
// empty list; the dashboard re-fetches rather than erroring out.
func (s *BedService) ListBeds() []models.Bed {
	beds, err := s.bedRepo.GetAllBeds()
	if err != nil {
		s.log.Error("failed to list beds", zap.Error(err))
		return []models.Bed{}
	}
	return beds
}

// ListRooms returns every room, degrading to an empty list on failure.
func (s *BedService) ListRooms() []models.Room {
	rooms, err := s.roomRepo.GetAllRooms()
	if err != nil {
		s.log.Error("failed to list rooms", zap.Error(err))
		return []models.Room{}
	}
	return rooms
}

// ListAlerts returns dashboard alerts, degrading to an empty list on failure.
func (s *BedService) ListAlerts() []models.Alert {
	alerts, err := s.alertRepo.GetAllAlerts()
	if err != nil {
		s.log.Error("failed to list alerts", zap.Error(err))
		return []models.Alert{}
	}
	return alerts
}

// PatchBed applies the generic bed field patch: primary status as an open
// string, aux_status validated against its closed set. An empty aux_status
// clears the marker. Returns the updated row.
func (s *BedService) PatchBed(id uint, status, auxStatus *string) (*models.Bed, error) {
	updates := make(map[string]interface{})

	if status != nil && *status != "" {
		updates["status"] = models.BedStatus(*status)
	}
	if auxStatus != nil {
		if *auxStatus == "" {
			updates["aux_status"] = nil
		} else {
			aux := models.AuxStatus(*auxStatus)
			if !aux.Valid() {
				return nil, ErrInvalidAuxStatus
			}
			updates["aux_status"] = aux
		}
	}
	if len(updates) == 0 {
		return nil, ErrNoChanges
	}

	if _, err := s.bedRepo.GetBedByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBedNotFound
		}
		return nil, err
	}
	if err := s.bedRepo.UpdateBedFields(id, updates); err != nil {
		return nil, err
	}
	return s.bedRepo.GetBedByID(id)
}
