package services

import (
	"frontdesk/availability"
	"frontdesk/errors"
	"frontdesk/models"
)

// BillBreakdown là bảng kê hóa đơn của một lượt lưu trú
type BillBreakdown struct {
	RoomCharges    float64 `json:"roomCharges"`
	PurchasesTotal float64 `json:"purchasesTotal"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
	AdvancePaid    float64 `json:"advancePaid"`
	BalanceDue     float64 `json:"balanceDue"`
}

// CalculateRoomCharges tính tiền phòng: số đêm x số phòng x giá mỗi đêm.
// Ngày ở dạng chuỗi YYYY-MM-DD như trong models.Guest.
func CalculateRoomCharges(dateOfArrival, dateOfDeparture string, numberOfRooms int, pricePerNight float64) (float64, error) {
	arrival, err := availability.ParseDay(dateOfArrival)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid arrival date", err)
	}
	departure, err := availability.ParseDay(dateOfDeparture)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid departure date", err)
	}
	if !departure.After(arrival) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidRange, "Departure must be after arrival", nil)
	}

	nights := availability.Nights(arrival, departure)
	return float64(nights) * float64(numberOfRooms) * pricePerNight, nil
}

// CalculateBillTotal gộp tiền phòng, chi tiêu thêm và thuế thành bảng kê.
// Khoản ứng trước được trừ vào số còn phải thu, không trừ vào tổng.
func CalculateBillTotal(roomCharges float64, purchases []models.Purchase, taxPercentage, advancePaid float64) BillBreakdown {
	purchasesTotal := 0.0
	for _, p := range purchases {
		purchasesTotal += p.TotalPrice
	}

	subtotal := roomCharges + purchasesTotal
	tax := subtotal * taxPercentage / 100
	total := subtotal + tax

	return BillBreakdown{
		RoomCharges:    roomCharges,
		PurchasesTotal: purchasesTotal,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		AdvancePaid:    advancePaid,
		BalanceDue:     total - advancePaid,
	}
}
