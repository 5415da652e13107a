package dto

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	RoomType   string  `json:"roomType" binding:"required"`
	Floor      int     `json:"floor"`
	BasePrice  float64 `json:"basePrice"`
	Status     string  `json:"status"`
}

// RoomStatusRequest là DTO cho request cập nhật trạng thái phòng
type RoomStatusRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

// RoomTypeStats là thống kê tồn kho theo loại phòng
type RoomTypeStats struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Occupied int    `json:"occupied"`
}
