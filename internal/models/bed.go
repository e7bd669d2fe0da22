package models

import "time"

// Bed represents a bed inside a room. Status values come from the open
// BedStatus domain; AuxStatus is a parallel marker independent of the
// primary status. LastUpdate is refreshed on every status or aux write.
type Bed struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RoomID     uint       `gorm:"not null;index" json:"room_id"`
	Status     BedStatus  `gorm:"size:50;not null;default:'Disponible'" json:"status"`
	AuxStatus  *AuxStatus `gorm:"size:50" json:"aux_status"`
	LastUpdate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"last_update"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}
