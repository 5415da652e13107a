package dto

// DailyRevenue là doanh thu ghi nhận của một ngày
type DailyRevenue struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DashboardStats là DTO cho màn hình tổng quan lễ tân
type DashboardStats struct {
	TodayGuests              int            `json:"todayGuests"`
	MonthGuests              int            `json:"monthGuests"`
	TotalRevenue             float64        `json:"totalRevenue"`
	PendingCheckouts         int            `json:"pendingCheckouts"`
	AvailableRooms           int            `json:"availableRooms"`
	TotalRooms               int            `json:"totalRooms"`
	AdvancePaymentsCollected float64        `json:"advancePaymentsCollected"`
	UpcomingReservations     int            `json:"upcomingReservations"`
	RevenueLast7Days         []DailyRevenue `json:"revenueLast7Days"`
}
