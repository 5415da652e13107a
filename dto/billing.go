package dto

import (
	"frontdesk/models"
	"frontdesk/services"
)

// AddPurchaseRequest là DTO cho request thêm chi tiêu của khách
type AddPurchaseRequest struct {
	GuestID   uint    `json:"guestId" binding:"required"`
	ItemName  string  `json:"itemName" binding:"required"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
}

// GuestBillResponse là bảng kê đầy đủ trả cho màn hình thanh toán
type GuestBillResponse struct {
	Guest     models.Guest           `json:"guest"`
	Purchases []models.Purchase      `json:"purchases"`
	Bill      services.BillBreakdown `json:"bill"`
}
