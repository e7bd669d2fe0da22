package models

import "time"

// Discharge is an immutable audit record created when a patient is marked
// "de alta". The patient name is denormalized on purpose: the row must stay
// readable even if the patient record changes later.
type Discharge struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PatientName string     `gorm:"size:255;not null" json:"patient_name"`
	BedID       *uint      `json:"bed_id"`
	Status      string     `gorm:"size:50;not null;default:'Alta'" json:"status"`
	ExpectedAt  *time.Time `json:"expected_at"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Discharge model
func (Discharge) TableName() string {
	return "discharges"
}
