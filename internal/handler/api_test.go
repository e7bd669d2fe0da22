package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/repository"
	"github.com/artiefy/clinicafix-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:api%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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

// setupAPI wires the full handler stack over an in-memory database. Auth
// middleware stays out: the routes' workflow behavior is under test, not
// the token gate.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	zlog := zap.NewNop()

	bedRepo := repository.NewBedRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	dischargeRepo := repository.NewDischargeRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	clinicalRepo := repository.NewClinicalRepo(db)
	predictionRepo := repository.NewPredictionRepo(db)

	workflowService := service.NewWorkflowService(db, zlog)
	bedService := service.NewBedService(bedRepo, roomRepo, alertRepo, zlog)
	patientService := service.NewPatientService(patientRepo, dischargeRepo, zlog)
	clinicalService := service.NewClinicalService(clinicalRepo, patientRepo, zlog)
	predictionService := service.NewPredictionService(predictionRepo, zlog)

	r := gin.New()
	RegisterRoutes(r, Handlers{
		Bed:        NewBedHandler(bedService, workflowService),
		Patient:    NewPatientHandler(patientService, workflowService),
		Clinical:   NewClinicalHandler(clinicalService, t.TempDir(), "/static/uploads"),
		Prediction: NewPredictionHandler(predictionService),
	}, nil, nil)

	return r, db
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedOccupiedBed(t *testing.T, db *gorm.DB) {
	t.Helper()
	room := models.Room{Number: 101}
	require.NoError(t, db.Create(&room).Error)
	require.NoError(t, db.Create(&models.Bed{ID: 7, RoomID: room.ID, Status: models.BedAtencionMedica}).Error)
	bedID := uint(7)
	require.NoError(t, db.Create(&models.Patient{
		ID:              42,
		Name:            "Carlos Ruiz",
		BedID:           &bedID,
		DischargeStatus: models.StatusConCama,
	}).Error)
}

func TestPutBedRejectsFreeingOccupied(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/beds/7", gin.H{"status": "Disponible"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])

	// No row changed.
	var bed models.Bed
	require.NoError(t, db.First(&bed, 7).Error)
	assert.Equal(t, models.BedAtencionMedica, bed.Status)
}

func TestPutBedInvalidID(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodPut, "/api/beds/abc", gin.H{"status": "Limpieza"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutBedNotFound(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodPut, "/api/beds/99", gin.H{"status": "Limpieza"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDischargeScenario(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/patients/42", gin.H{"status": "de alta"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var patient models.Patient
	require.NoError(t, db.First(&patient, 42).Error)
	assert.Nil(t, patient.BedID)
	assert.Equal(t, models.StatusDeAlta, patient.DischargeStatus)

	var bed models.Bed
	require.NoError(t, db.First(&bed, 7).Error)
	assert.Equal(t, models.BedLimpieza, bed.Status)

	var discharges []models.Discharge
	require.NoError(t, db.Find(&discharges).Error)
	require.Len(t, discharges, 1)
	require.NotNil(t, discharges[0].BedID)
	assert.Equal(t, uint(7), *discharges[0].BedID)
	assert.Equal(t, "Alta", discharges[0].Status)
}

func TestConCamaWithoutBedID(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/patients/42", gin.H{"status": "con cama"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var patient models.Patient
	require.NoError(t, db.First(&patient, 42).Error)
	require.NotNil(t, patient.BedID)
	assert.Equal(t, uint(7), *patient.BedID)
}

func TestPatientUpdateRejectsBadBedID(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/patients/42", gin.H{"bed_id": "siete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatientPersonalPatchOverHTTP(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/patients/42", gin.H{
		"status": "palabra desconocida",
		"city":   "Bogotá",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var patient models.Patient
	require.NoError(t, db.First(&patient, 42).Error)
	assert.Equal(t, "Bogotá", patient.City)
	// An unrecognized status keyword never changes the workflow state.
	assert.Equal(t, models.StatusConCama, patient.DischargeStatus)
}

func TestPatientUpdateNoChanges(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/patients/42", gin.H{"desconocido": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePatientKeepsLiteralBirthDate(t *testing.T) {
	r, db := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/api/patients", gin.H{
		"name":       "Lucía Torres",
		"birth_date": "1990-02-28",
		"blood_type": "O+",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var patient models.Patient
	require.NoError(t, db.Where("name = ?", "Lucía Torres").First(&patient).Error)
	assert.Equal(t, "1990-02-28", patient.BirthDate)
	assert.Equal(t, models.StatusSinCama, patient.DischargeStatus)
}

func TestPatchBedEndpoint(t *testing.T) {
	r, db := setupAPI(t)
	seedOccupiedBed(t, db)

	w := doJSON(r, http.MethodPut, "/api/beds", gin.H{"id": 7, "aux_status": "Reserva"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var bed models.Bed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bed))
	require.NotNil(t, bed.AuxStatus)
	assert.Equal(t, models.AuxReserva, *bed.AuxStatus)

	w = doJSON(r, http.MethodPut, "/api/beds", gin.H{"id": 7, "aux_status": "NoExiste"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBedsDegradesGracefully(t *testing.T) {
	r, db := setupAPI(t)
	require.NoError(t, db.Migrator().DropTable(&models.Bed{}))

	w := doJSON(r, http.MethodGet, "/api/beds", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestForecastByHourEndpoint(t *testing.T) {
	r, db := setupAPI(t)
	require.NoError(t, db.Create(&[]models.BedAvailabilityPrediction{
		{Date: "2026-08-31", Hora: "08:00", Room: 101, CamasDisponibles: 2, Probabilidad: 0.9},
		{Date: "2026-08-31", Hora: "08:00", Room: 102, CamasDisponibles: 1, Probabilidad: 0.7},
	}).Error)

	w := doJSON(r, http.MethodGet, "/api/bed_availability_predictions?date=2026-08-31&tipo=hora", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []service.HourlyForecast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "08:00", out[0].Hora)
	assert.Equal(t, 3, out[0].CamasDisponibles)
	assert.ElementsMatch(t, []int{101, 102}, out[0].Habitaciones)
	assert.InDelta(t, 0.8, out[0].Probabilidad, 1e-9)
}

func TestEpicrisisUpsert(t *testing.T) {
	r, db := setupAPI(t)
	require.NoError(t, db.Create(&models.Patient{ID: 42, Name: "Carlos Ruiz", DischargeStatus: models.StatusSinCama}).Error)

	w := doJSON(r, http.MethodPost, "/api/epicrisis?patientId=42", gin.H{"resumen": "v1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/epicrisis?patientId=42", gin.H{"resumen": "v2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A single document per patient, overwritten in place.
	var count int64
	require.NoError(t, db.Model(&models.Epicrisis{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = doJSON(r, http.MethodGet, "/api/epicrisis?patientId=42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var e models.Epicrisis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.JSONEq(t, `{"resumen":"v2"}`, e.Content)
}

func TestProcedureAppendAndHistoryMirror(t *testing.T) {
	r, db := setupAPI(t)
	require.NoError(t, db.Create(&models.Patient{ID: 42, Name: "Carlos Ruiz", DischargeStatus: models.StatusSinCama}).Error)

	w := doJSON(r, http.MethodPost, "/api/patients/42/procedures", gin.H{"text": "Radiografía de tórax"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/patients/42/procedures", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var procedures []models.Procedure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &procedures))
	require.Len(t, procedures, 1)
	assert.Equal(t, "Radiografía de tórax", procedures[0].Description)

	var history []models.PatientHistory
	require.NoError(t, db.Find(&history).Error)
	require.Len(t, history, 1)
	assert.Contains(t, history[0].Note, "Radiografía de tórax")
}

func TestClinicalNotesForUnknownPatient(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/api/patients/99/procedures", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/patients/99/pre_egreso", gin.H{"text": "nota"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
