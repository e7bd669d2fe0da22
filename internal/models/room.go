package models

import "time"

// Room represents a hospital room. Rows are provisioned out of band and
// are immutable after creation.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"number"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}
