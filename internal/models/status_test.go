package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBedStatusSelectable(t *testing.T) {
	selectable := []BedStatus{
		BedDisponible, BedLimpieza, BedAtencionMedica, BedDiagnostico, BedPreEgreso,
	}
	for _, s := range selectable {
		assert.True(t, s.Selectable(), "status %q", s)
	}

	for _, s := range []BedStatus{BedOcupada, BedMantenimiento, BedAislamiento, BedReserva, "otro"} {
		assert.False(t, s.Selectable(), "status %q", s)
	}
}

func TestBedStatusFrees(t *testing.T) {
	assert.True(t, BedDisponible.Frees())
	assert.True(t, BedLimpieza.Frees())
	assert.False(t, BedAtencionMedica.Frees())
	assert.False(t, BedOcupada.Frees())
}

func TestAuxStatusValid(t *testing.T) {
	for _, s := range []AuxStatus{AuxLimpieza, AuxMantenimiento, AuxAislamiento, AuxReserva} {
		assert.True(t, s.Valid(), "aux %q", s)
	}
	assert.False(t, AuxStatus("Disponible").Valid())
	assert.False(t, AuxStatus("").Valid())
}

func TestDischargeStatusTransition(t *testing.T) {
	for _, s := range []DischargeStatus{
		StatusDeAlta, StatusSinCama, StatusConCama, StatusDiagnostico, StatusPreEgreso,
	} {
		assert.True(t, s.Transition(), "status %q", s)
	}
	for _, s := range []DischargeStatus{StatusActivo, StatusInactivo, StatusPendiente, "otro"} {
		assert.False(t, s.Transition(), "status %q", s)
	}
}
