package dto

// DailyOccupancy là một điểm trên biểu đồ lấp đầy theo ngày
type DailyOccupancy struct {
	Date      string `json:"date"`
	Rooms     int    `json:"rooms"`
	Occupancy int    `json:"occupancy"`
}

// RoomTypeCount đếm số phòng theo loại cho biểu đồ phân bố
type RoomTypeCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ForecastResponse là DTO cho màn hình dự báo đặt phòng
type ForecastResponse struct {
	OccupancyPercentage  int              `json:"occupancyPercentage"`
	ExpectedRevenue      float64          `json:"expectedRevenue"`
	UpcomingReservations int              `json:"upcomingReservations"`
	DailyOccupancy       []DailyOccupancy `json:"dailyOccupancy"`
	RoomTypeDistribution []RoomTypeCount  `json:"roomTypeDistribution"`
}
