package service

import (
	"sort"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"

	"go.uber.org/zap"
)

type PredictionService struct {
	predictionRepo *repository.PredictionRepository
	log            *zap.Logger
}

func NewPredictionService(predictionRepo *repository.PredictionRepository, log *zap.Logger) *PredictionService {
	return &PredictionService{
		predictionRepo: predictionRepo,
		log:            log,
	}
}

// HourlyForecast is one aggregated forecast row: bed counts summed across
// rooms, probability averaged, room numbers collected.
type HourlyForecast struct {
	Hora             string  `json:"hora"`
	CamasDisponibles int     `json:"camas_disponibles"`
	Habitaciones     []int   `json:"habitaciones"`
	Probabilidad     float64 `json:"probabilidad"`
}

// ListPredictions returns every forecast row, degrading to an empty list
// on failure.
func (s *PredictionService) ListPredictions() []models.BedAvailabilityPrediction {
	rows, err := s.predictionRepo.GetAllPredictions()
	if err != nil {
		s.log.Error("failed to list predictions", zap.Error(err))
		return []models.BedAvailabilityPrediction{}
	}
	return rows
}

// ForecastRows returns the per-room forecast rows for a date (all rows when
// date is empty), for client-side aggregation.
func (s *PredictionService) ForecastRows(date string) []models.BedAvailabilityPrediction {
	var rows []models.BedAvailabilityPrediction
	var err error
	if date == "" {
		rows, err = s.predictionRepo.GetAllPredictions()
	} else {
		rows, err = s.predictionRepo.GetPredictionsByDate(date)
	}
	if err != nil {
		s.log.Error("failed to load forecast rows", zap.Error(err))
		return []models.BedAvailabilityPrediction{}
	}
	return rows
}

// ForecastByHour returns the hourly aggregation of the forecast rows for a
// date.
func (s *PredictionService) ForecastByHour(date string) []HourlyForecast {
	return AggregateByHour(s.ForecastRows(date))
}

// AggregateByHour folds per-room forecast rows into one row per hour:
// camas_disponibles summed, probabilidad averaged, habitaciones collected
// in row order. Output is sorted by hour.
func AggregateByHour(rows []models.BedAvailabilityPrediction) []HourlyForecast {
	type acc struct {
		camas    int
		rooms    []int
		probSum  float64
		rowCount int
	}

	byHour := make(map[string]*acc)
	for _, row := range rows {
		a, ok := byHour[row.Hora]
		if !ok {
			a = &acc{}
			byHour[row.Hora] = a
		}
		a.camas += row.CamasDisponibles
		a.rooms = append(a.rooms, row.Room)
		a.probSum += row.Probabilidad
		a.rowCount++
	}

	out := make([]HourlyForecast, 0, len(byHour))
	for hora, a := range byHour {
		out = append(out, HourlyForecast{
			Hora:             hora,
			CamasDisponibles: a.camas,
			Habitaciones:     a.rooms,
			Probabilidad:     a.probSum / float64(a.rowCount),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hora < out[j].Hora })
	return out
}
