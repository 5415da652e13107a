package models

import "time"

// RoomType là danh mục loại phòng (DBL, SGL, TPL...)
type RoomType struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex;size:10"`
	Name         string    `json:"name"`
	MaxOccupancy int       `json:"maxOccupancy" gorm:"default:2"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
