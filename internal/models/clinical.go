package models

import "time"

// PatientHistory is an append-only log entry per patient. Audio notes are
// referenced inline in the text as "[audio:<url>]" markers.
type PatientHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PatientHistory) TableName() string {
	return "patient_histories"
}

// PreEgreso is an append-only pre-discharge preparation note.
type PreEgreso struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PreEgreso) TableName() string {
	return "pre_egresos"
}

// Procedure is an append-only clinical procedure note.
type Procedure struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// Epicrisis holds the clinical discharge summary as serialized JSON text.
// Unlike the other clinical records it is upsert-by-patient: one latest
// document per patient, maintained by overwrite.
type Epicrisis struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;uniqueIndex" json:"patient_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Epicrisis) TableName() string {
	return "epicrisis"
}
