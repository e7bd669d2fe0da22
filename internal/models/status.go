package models

// BedStatus is the operational state of a bed, independent of its occupant.
// The schema only declares the first six values, but the patient workflow
// also writes the clinical states below, so the domain is an open string
// set validated against working subsets rather than a closed enum.
type BedStatus string

const (
	BedDisponible     BedStatus = "Disponible"
	BedOcupada        BedStatus = "Ocupada"
	BedLimpieza       BedStatus = "Limpieza"
	BedMantenimiento  BedStatus = "Mantenimiento"
	BedAislamiento    BedStatus = "Aislamiento"
	BedReserva        BedStatus = "Reserva"
	BedAtencionMedica BedStatus = "Atención Médica"
	BedDiagnostico    BedStatus = "Diagnostico y Procedimiento"
	BedPreEgreso      BedStatus = "Pre-egreso"
)

// Selectable reports whether the status can be requested directly through
// the bed board. The remaining values are only written as side effects of
// patient transitions or during provisioning.
func (s BedStatus) Selectable() bool {
	switch s {
	case BedDisponible, BedLimpieza, BedAtencionMedica, BedDiagnostico, BedPreEgreso:
		return true
	}
	return false
}

// Frees reports whether the status implies the bed holds no active patient.
func (s BedStatus) Frees() bool {
	return s == BedDisponible || s == BedLimpieza
}

// AuxStatus is a secondary bed marker layered on top of the primary status.
type AuxStatus string

const (
	AuxLimpieza      AuxStatus = "Limpieza"
	AuxMantenimiento AuxStatus = "Mantenimiento"
	AuxAislamiento   AuxStatus = "Aislamiento"
	AuxReserva       AuxStatus = "Reserva"
)

func (s AuxStatus) Valid() bool {
	switch s {
	case AuxLimpieza, AuxMantenimiento, AuxAislamiento, AuxReserva:
		return true
	}
	return false
}

// DischargeStatus is a patient's position in the admission-to-discharge
// workflow.
type DischargeStatus string

const (
	StatusActivo      DischargeStatus = "activo"
	StatusInactivo    DischargeStatus = "inactivo"
	StatusPendiente   DischargeStatus = "pendiente"
	StatusDeAlta      DischargeStatus = "de alta"
	StatusConCama     DischargeStatus = "con cama"
	StatusSinCama     DischargeStatus = "sin cama"
	StatusDiagnostico DischargeStatus = "diagnosticos_procedimientos"
	StatusPreEgreso   DischargeStatus = "pre-egreso"
)

// Discharged reports whether the patient has left the hospital.
func (s DischargeStatus) Discharged() bool {
	return s == StatusDeAlta
}

// Transition reports whether the status is one of the workflow keywords
// that trigger bed side effects when sent to the patient update endpoint.
// Any other value on the wire falls through to the personal-field patch.
func (s DischargeStatus) Transition() bool {
	switch s {
	case StatusDeAlta, StatusSinCama, StatusConCama, StatusDiagnostico, StatusPreEgreso:
		return true
	}
	return false
}
