package models

import "time"

// Setting lưu cấu hình chung của khách sạn (một dòng duy nhất)
type Setting struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HotelName     string    `json:"hotelName"`
	Address       string    `json:"address"`
	TaxPercentage float64   `json:"taxPercentage"`
	Currency      string    `json:"currency" gorm:"size:5;default:LKR"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
