package models

import "time"

// Purchase là một khoản chi tiêu thêm của khách (nhà hàng, giặt ủi...)
type Purchase struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GuestID      uint      `json:"guestId" gorm:"index"`
	Guest        Guest     `json:"-" gorm:"foreignKey:GuestID"`
	ItemName     string    `json:"itemName"`
	Category     string    `json:"category" gorm:"size:20"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	TotalPrice   float64   `json:"totalPrice"`
	PurchaseDate time.Time `gorm:"autoCreateTime" json:"purchaseDate"`
}
