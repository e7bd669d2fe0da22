package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Auth       *AuthHandler
	Bed        *BedHandler
	Patient    *PatientHandler
	Clinical   *ClinicalHandler
	Prediction *PredictionHandler
}

// RegisterRoutes wires the API surface under /api. authMW guards every
// non-auth route; readMW (cache and the like) wraps the slow-changing
// forecast reads only.
func RegisterRoutes(r *gin.Engine, h Handlers, authMW []gin.HandlerFunc, readMW []gin.HandlerFunc) {
	if h.Auth != nil {
		auth := r.Group("/api/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}
	}

	api := r.Group("/api")
	api.Use(authMW...)
	{
		api.GET("/beds", h.Bed.ListBeds)
		api.GET("/rooms", h.Bed.ListRooms)
		api.GET("/alerts", h.Bed.ListAlerts)
		api.PUT("/beds/:id", h.Bed.ChangeStatus)
		api.PUT("/beds", h.Bed.Patch)

		api.GET("/patients", h.Patient.ListPatients)
		api.GET("/patients/:id", h.Patient.Get)
		api.POST("/patients", h.Patient.Create)
		api.PUT("/patients/:id", h.Patient.Update)
		api.GET("/discharges", h.Patient.ListDischarges)

		api.GET("/patients/:id/procedures", h.Clinical.ListProcedures)
		api.POST("/patients/:id/procedures", h.Clinical.AddProcedure)
		api.GET("/patients/:id/pre_egreso", h.Clinical.ListPreEgresos)
		api.POST("/patients/:id/pre_egreso", h.Clinical.AddPreEgreso)
		api.GET("/patients/:id/diagnosis", h.Clinical.GetDiagnosis)
		api.POST("/patients/:id/diagnosis", h.Clinical.AddDiagnosis)
		api.GET("/patients/:id/history", h.Clinical.ListHistory)
		api.POST("/patients/:id/history", h.Clinical.AddHistoryEntry)
		api.GET("/epicrisis", h.Clinical.GetEpicrisis)
		api.POST("/epicrisis", h.Clinical.SaveEpicrisis)

		forecasts := api.Group("")
		forecasts.Use(readMW...)
		{
			forecasts.GET("/predictions", h.Prediction.ListPredictions)
			forecasts.GET("/bed_availability_predictions", h.Prediction.Forecast)
		}
	}
}
