package service

import (
	"testing"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAggregateByHour(t *testing.T) {
	rows := []models.BedAvailabilityPrediction{
		{Hora: "08:00", CamasDisponibles: 2, Room: 101, Probabilidad: 0.9},
		{Hora: "08:00", CamasDisponibles: 1, Room: 102, Probabilidad: 0.7},
	}

	out := AggregateByHour(rows)
	require.Len(t, out, 1)

	assert.Equal(t, "08:00", out[0].Hora)
	assert.Equal(t, 3, out[0].CamasDisponibles)
	assert.Equal(t, []int{101, 102}, out[0].Habitaciones)
	assert.InDelta(t, 0.8, out[0].Probabilidad, 1e-9)
}

func TestAggregateByHourSortsHours(t *testing.T) {
	rows := []models.BedAvailabilityPrediction{
		{Hora: "14:00", CamasDisponibles: 1, Room: 103, Probabilidad: 0.5},
		{Hora: "08:00", CamasDisponibles: 2, Room: 101, Probabilidad: 0.9},
		{Hora: "14:00", CamasDisponibles: 4, Room: 101, Probabilidad: 0.3},
	}

	out := AggregateByHour(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "08:00", out[0].Hora)
	assert.Equal(t, "14:00", out[1].Hora)
	assert.Equal(t, 5, out[1].CamasDisponibles)
	assert.Equal(t, []int{103, 101}, out[1].Habitaciones)
	assert.InDelta(t, 0.4, out[1].Probabilidad, 1e-9)
}

func TestAggregateByHourEmpty(t *testing.T) {
	assert.Empty(t, AggregateByHour(nil))
}

func TestForecastRowsPassThrough(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]models.BedAvailabilityPrediction{
		{Date: "2026-08-30", Hora: "08:00", Room: 101, CamasDisponibles: 2, Probabilidad: 0.9},
		{Date: "2026-08-31", Hora: "08:00", Room: 101, CamasDisponibles: 1, Probabilidad: 0.4},
	}).Error)

	svc := NewPredictionService(repository.NewPredictionRepo(db), zap.NewNop())

	all := svc.ForecastRows("")
	assert.Len(t, all, 2)

	filtered := svc.ForecastRows("2026-08-31")
	require.Len(t, filtered, 1)
	assert.Equal(t, "2026-08-31", filtered[0].Date)
}
