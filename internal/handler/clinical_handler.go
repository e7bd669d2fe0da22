package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClinicalHandler struct {
	clinicalService *service.ClinicalService
	uploadsDir      string
	uploadsBaseURL  string
}

func NewClinicalHandler(clinicalService *service.ClinicalService, uploadsDir, uploadsBaseURL string) *ClinicalHandler {
	return &ClinicalHandler{
		clinicalService: clinicalService,
		uploadsDir:      uploadsDir,
		uploadsBaseURL:  uploadsBaseURL,
	}
}

type clinicalNoteRequest struct {
	Text string `json:"text"`
}

// noteText extracts the note text from either a JSON body or a multipart
// form. A multipart audio file is stored under the static uploads dir and
// referenced inline as "[audio:<url>]".
func (h *ClinicalHandler) noteText(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		text := c.PostForm("text")
		file, err := c.FormFile("audio")
		if err != nil {
			// No file attached; plain form text is still a valid note.
			return text, nil
		}
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
			return "", err
		}
		url := h.uploadsBaseURL + "/" + name
		if text != "" {
			return text + " [audio:" + url + "]", nil
		}
		return "[audio:" + url + "]", nil
	}

	var req clinicalNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", err
	}
	return req.Text, nil
}

// ListProcedures handles GET /patients/:id/procedures
func (h *ClinicalHandler) ListProcedures(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	procedures, err := h.clinicalService.ListProcedures(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, procedures)
}

// AddProcedure handles POST /patients/:id/procedures
func (h *ClinicalHandler) AddProcedure(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	text, err := h.noteText(c)
	if err != nil || text == "" {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el texto del procedimiento")
		return
	}
	procedure, err := h.clinicalService.AddProcedure(id, text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, procedure)
}

// ListPreEgresos handles GET /patients/:id/pre_egreso
func (h *ClinicalHandler) ListPreEgresos(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	notes, err := h.clinicalService.ListPreEgresos(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, notes)
}

// AddPreEgreso handles POST /patients/:id/pre_egreso
func (h *ClinicalHandler) AddPreEgreso(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	text, err := h.noteText(c)
	if err != nil || text == "" {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el texto de pre-egreso")
		return
	}
	note, err := h.clinicalService.AddPreEgreso(id, text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, note)
}

// GetDiagnosis handles GET /patients/:id/diagnosis
func (h *ClinicalHandler) GetDiagnosis(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	diagnosis, err := h.clinicalService.GetDiagnosis(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, gin.H{"diagnosis": diagnosis})
}

// AddDiagnosis handles POST /patients/:id/diagnosis
func (h *ClinicalHandler) AddDiagnosis(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	text, err := h.noteText(c)
	if err != nil || text == "" {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el texto del diagnóstico")
		return
	}
	patient, err := h.clinicalService.AppendDiagnosis(id, text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, patient)
}

// ListHistory handles GET /patients/:id/history
func (h *ClinicalHandler) ListHistory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	entries, err := h.clinicalService.ListHistory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, entries)
}

// AddHistoryEntry handles POST /patients/:id/history
func (h *ClinicalHandler) AddHistoryEntry(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de paciente no válido")
		return
	}
	text, err := h.noteText(c)
	if err != nil || text == "" {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el texto de la nota")
		return
	}
	entry, err := h.clinicalService.AddHistoryEntry(id, text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, entry)
}

// GetEpicrisis handles GET /epicrisis?patientId=
func (h *ClinicalHandler) GetEpicrisis(c *gin.Context) {
	id, err := parseID(c.Query("patientId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "patientId no válido")
		return
	}
	e, err := h.clinicalService.GetEpicrisis(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if e == nil {
		utils.JSONData(c, gin.H{})
		return
	}
	utils.JSONData(c, e)
}

// SaveEpicrisis handles POST /epicrisis?patientId= with an arbitrary JSON
// document as the body
func (h *ClinicalHandler) SaveEpicrisis(c *gin.Context) {
	id, err := parseID(c.Query("patientId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "patientId no válido")
		return
	}
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el documento de epicrisis")
		return
	}
	e, err := h.clinicalService.SaveEpicrisis(id, body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, e)
}
