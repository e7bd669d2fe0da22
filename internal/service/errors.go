package service

import "errors"

// Sentinel errors surfaced to clients. The handler layer maps them to HTTP
// statuses in one place; messages are user-facing Spanish.
var (
	ErrPatientNotFound  = errors.New("paciente no encontrado")
	ErrBedNotFound      = errors.New("cama no encontrada")
	ErrBedOccupied      = errors.New("la cama tiene un paciente activo, debe darlo de alta primero")
	ErrInvalidBedStatus = errors.New("estado de cama no válido")
	ErrInvalidAuxStatus = errors.New("estado auxiliar no válido")
	ErrBedRequired      = errors.New("bed_id es requerido para asignar una cama")
	ErrNoChanges        = errors.New("sin cambios para aplicar")
)
