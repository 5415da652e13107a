package dto

// CreateGuestRequest là DTO cho request đăng ký khách mới
type CreateGuestRequest struct {
	NameWithInitials  string   `json:"nameWithInitials" binding:"required"`
	PassportNIC       string   `json:"passportNic"`
	Nationality       string   `json:"nationality"`
	MobileNumber      string   `json:"mobileNumber"`
	ReservationNumber string   `json:"reservationNumber"`
	VoucherNumber     string   `json:"voucherNumber"`
	RoomNumbers       []string `json:"roomNumbers" binding:"required"`
	RoomType          string   `json:"roomType"`
	NumberOfAdults    int      `json:"numberOfAdults"`
	NumberOfChildren  int      `json:"numberOfChildren"`
	ChildrenAges      []int64  `json:"childrenAges"`
	MealPlan          string   `json:"mealPlan"`
	DateOfArrival     string   `json:"dateOfArrival" binding:"required"`
	DateOfDeparture   string   `json:"dateOfDeparture" binding:"required"`
	TimeOfArrival     string   `json:"timeOfArrival"`
	TimeOfDeparture   string   `json:"timeOfDeparture"`
	// reserved: khách đặt trước; checked_in: nhận phòng ngay
	Status               string  `json:"status"`
	AdvancePaymentAmount float64 `json:"advancePaymentAmount"`
}

// ExtendStayRequest là DTO cho request gia hạn lưu trú
type ExtendStayRequest struct {
	GuestID         uint   `json:"guestId" binding:"required"`
	DateOfDeparture string `json:"dateOfDeparture" binding:"required"`
}

// GuestStatusRequest là DTO cho request đổi trạng thái (checkout/hủy)
type GuestStatusRequest struct {
	GuestID uint `json:"guestId" binding:"required"`
}
