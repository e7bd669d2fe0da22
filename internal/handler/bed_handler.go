package handler

import (
	"net/http"

	"github.com/artiefy/clinicafix-sub000/internal/models"
	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	bedService      *service.BedService
	workflowService *service.WorkflowService
}

func NewBedHandler(bedService *service.BedService, workflowService *service.WorkflowService) *BedHandler {
	return &BedHandler{
		bedService:      bedService,
		workflowService: workflowService,
	}
}

// ListBeds returns all beds for the board
func (h *BedHandler) ListBeds(c *gin.Context) {
	utils.JSONData(c, h.bedService.ListBeds())
}

// ListRooms returns all rooms
func (h *BedHandler) ListRooms(c *gin.Context) {
	utils.JSONData(c, h.bedService.ListRooms())
}

// ListAlerts returns dashboard alerts
func (h *BedHandler) ListAlerts(c *gin.Context) {
	utils.JSONData(c, h.bedService.ListAlerts())
}

type changeBedStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles PUT /beds/:id, the board drag/drop status change
func (h *BedHandler) ChangeStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id de cama no válido")
		return
	}

	var req changeBedStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el campo status")
		return
	}

	if err := h.workflowService.ChangeBedStatus(c.Request.Context(), id, models.BedStatus(req.Status)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONMessage(c, "estado de cama actualizado")
}

type patchBedRequest struct {
	ID        uint    `json:"id" binding:"required"`
	Status    *string `json:"status"`
	AuxStatus *string `json:"aux_status"`
}

// Patch handles PUT /beds, the generic bed field patch
func (h *BedHandler) Patch(c *gin.Context) {
	var req patchBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "se requiere el campo id")
		return
	}

	bed, err := h.bedService.PatchBed(req.ID, req.Status, req.AuxStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONData(c, bed)
}
