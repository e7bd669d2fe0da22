package handler

import (
	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService *service.PredictionService
}

func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// ListPredictions handles GET /predictions
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	utils.JSONData(c, h.predictionService.ListPredictions())
}

// Forecast handles GET /bed_availability_predictions?date=&tipo=hora|dia.
// tipo=hora aggregates rows per hour across rooms; any other tipo passes
// the rows through for client-side aggregation.
func (h *PredictionHandler) Forecast(c *gin.Context) {
	date := c.Query("date")

	if c.Query("tipo") == "hora" {
		utils.JSONData(c, h.predictionService.ForecastByHour(date))
		return
	}
	utils.JSONData(c, h.predictionService.ForecastRows(date))
}
