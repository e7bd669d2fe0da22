package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID validates numeric parseability of a path or query id before any
// lookup happens.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondServiceError maps service errors to HTTP statuses in one place.
// Unexpected errors stay opaque: logged server-side, generic 500 here.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPatientNotFound),
		errors.Is(err, service.ErrBedNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrBedOccupied),
		errors.Is(err, service.ErrInvalidBedStatus),
		errors.Is(err, service.ErrInvalidAuxStatus),
		errors.Is(err, service.ErrBedRequired),
		errors.Is(err, service.ErrNoChanges),
		errors.Is(err, service.ErrInvalidEpicrisis):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	default:
		utils.JSONError(c, http.StatusInternalServerError, "error interno del servidor")
	}
}
