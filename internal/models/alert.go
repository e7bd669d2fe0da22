package models

import "time"

// Alert is an operational notice shown on the dashboard. The workflow
// engine raises one when a best-effort write (the discharge audit insert)
// fails, so the inconsistency is visible instead of silent.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BedID     *uint     `gorm:"index" json:"bed_id"`
	Level     string    `gorm:"size:20;not null;default:'info'" json:"level"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Alert model
func (Alert) TableName() string {
	return "alerts"
}
