package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/artiefy/clinicafix-sub000/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own named database so tests stay isolated while the
// connection pool shares the underlying memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.Bed{},
		&models.Patient{},
		&models.Discharge{},
		&models.Alert{},
		&models.PatientHistory{},
		&models.PreEgreso{},
		&models.Procedure{},
		&models.Epicrisis{},
		&models.BedAvailabilityPrediction{},
	))
	return db
}

func uintPtr(v uint) *uint { return &v }

// seedBedWithPatient provisions one room with the given bed, occupied by
// the given patient.
func seedBedWithPatient(t *testing.T, db *gorm.DB, bedID, patientID uint, bedStatus models.BedStatus, patientStatus models.DischargeStatus) {
	t.Helper()

	room := models.Room{Number: 101}
	require.NoError(t, db.Create(&room).Error)
	require.NoError(t, db.Create(&models.Bed{ID: bedID, RoomID: room.ID, Status: bedStatus}).Error)
	require.NoError(t, db.Create(&models.Patient{
		ID:              patientID,
		Name:            "Paciente Prueba",
		BedID:           uintPtr(bedID),
		DischargeStatus: patientStatus,
	}).Error)
}

func fetchBed(t *testing.T, db *gorm.DB, id uint) models.Bed {
	t.Helper()
	var bed models.Bed
	require.NoError(t, db.First(&bed, id).Error)
	return bed
}

func fetchPatient(t *testing.T, db *gorm.DB, id uint) models.Patient {
	t.Helper()
	var p models.Patient
	require.NoError(t, db.First(&p, id).Error)
	return p
}
