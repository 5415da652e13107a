package models

import (
	"fmt"
	"time"

	"frontdesk/constants"
)

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomNumber string    `json:"roomNumber" gorm:"uniqueIndex;size:10"`
	RoomType   string    `json:"roomType" gorm:"size:10;index"`
	Floor      int       `json:"floor" gorm:"default:1"`
	BasePrice  float64   `json:"basePrice"`
	Status     string    `json:"status" gorm:"size:20;default:available"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied, constants.RoomStatusMaintenance:
		return nil
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}
