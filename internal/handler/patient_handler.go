package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService  *service.PatientService
	workflowService *service.WorkflowService
}

func NewPatientHandler(patientService *service.PatientService, workflowService *service.WorkflowService) *PatientHandler {
	return &PatientHandler{
		patientService:  patientService,
		workflowService: workflowService,
	}
}

// ListPatients returns all patients
func (h *PatientHandler) ListPatients(c *gin.Context) {
	utils.JSONData(c, h.patientService.ListPatients())
}

// ListDischarges returns the discharge audit trail
func (h *PatientHandler) ListDischarges(c *gin.Context) {
	utils.JSONData(c, h.patientService.ListDischarges())
}

// Get returns a single patient row
func (h *PatientHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	patient, err := h.patientService.GetPatient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, patient)
}

// Create handles POST /patients, the intake form
func (h *PatientHandler) Create(c *gin.Context) {
	var in service.CreatePatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el campo name")
		return
	}

	patient, err := h.patientService.CreatePatient(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONCreated(c, patient)
}

// personalFieldKeys are the wire keys accepted by the personal-field patch;
// anything else in the body is dropped silently.
var personalFieldKeys = []string{
	"name", "diagnosis", "procedure", "city", "phone",
	"blood_type", "birth_date", "comment",
}

var errInvalidBedID = errors.New("bed_id no válido")

// Update handles PUT /patients/:id. The dynamic body is decoded into an
// explicit PatientChange here, once, so the workflow engine never touches
// raw request keys.
func (h *PatientHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cuerpo de la solicitud no válido")
		return
	}

	change, err := buildPatientChange(body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.workflowService.ChangePatientStatus(c.Request.Context(), id, change)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !res.AuditRecorded {
		// Partial success: the transition landed but the audit row did not.
		c.JSON(http.StatusOK, gin.H{
			"message":        "paciente actualizado",
			"audit_recorded": false,
		})
		return
	}
	utils.JSONMessage(c, "paciente actualizado")
}

// buildPatientChange decodes the dynamic update body. Only recognized
// workflow keywords populate Status; bed_id keeps its absent/null/value
// tri-state; personal fields are whitelisted.
func buildPatientChange(body map[string]interface{}) (service.PatientChange, error) {
	change := service.PatientChange{Fields: make(map[string]interface{})}

	if raw, ok := body["status"]; ok {
		if str, ok := raw.(string); ok {
			if status := models.DischargeStatus(str); status.Transition() {
				change.Status = &status
			}
		}
	}

	if raw, present := body["bed_id"]; present {
		change.BedIDPresent = true
		if raw != nil {
			id, err := decodeBedID(raw)
			if err != nil {
				return service.PatientChange{}, err
			}
			change.BedID = &id
		}
	}

	for _, key := range personalFieldKeys {
		if value, ok := body[key].(string); ok {
			change.Fields[key] = value
		}
	}

	return change, nil
}

// decodeBedID accepts the number or numeric-string forms seen on the wire;
// NaN and non-numeric values are rejected before any lookup.
func decodeBedID(raw interface{}) (uint, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || v < 0 || v != math.Trunc(v) {
			return 0, errInvalidBedID
		}
		return uint(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, errInvalidBedID
		}
		return uint(id), nil
	default:
		return 0, errInvalidBedID
	}
}
