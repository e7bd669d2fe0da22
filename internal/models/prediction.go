package models

// BedAvailabilityPrediction is an externally produced forecast row keyed by
// (date, hora, room). Rows are read-only from this system's perspective;
// an external job populates the table.
type BedAvailabilityPrediction struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Date             string  `gorm:"size:10;not null;index" json:"date"`
	Hora             string  `gorm:"size:5;not null" json:"hora"`
	Room             int     `gorm:"not null" json:"room"`
	CamasDisponibles int     `gorm:"not null" json:"camas_disponibles"`
	Probabilidad     float64 `gorm:"not null" json:"probabilidad"`
}

// TableName specifies the table name for BedAvailabilityPrediction model
func (BedAvailabilityPrediction) TableName() string {
	return "bed_availability_predictions"
}
