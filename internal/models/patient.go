package models

import "time"

// Patient represents an admitted patient. BedID is a weak reference: at
// most one patient per bed by convention, kept consistent by the workflow
// engine rather than a database constraint. Rows are never deleted;
// "de alta" is a status, not a deletion.
type Patient struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	BedID           *uint           `gorm:"index" json:"bed_id"`
	DischargeStatus DischargeStatus `gorm:"size:50;not null;default:'activo'" json:"discharge_status"`

	Diagnosis string `gorm:"type:text" json:"diagnosis,omitempty"`
	Procedure string `gorm:"type:text" json:"procedure,omitempty"`
	City      string `gorm:"size:100" json:"city,omitempty"`
	Phone     string `gorm:"size:30" json:"phone,omitempty"`
	BloodType string `gorm:"size:10" json:"blood_type,omitempty"`
	// Literal calendar date (YYYY-MM-DD), never converted to a timestamp.
	BirthDate string `gorm:"size:10" json:"birth_date,omitempty"`
	Comment   string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Bed *Bed `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
