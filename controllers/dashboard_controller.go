package controllers

import (
	"time"

	"frontdesk/availability"
	"frontdesk/config"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats tổng hợp số liệu màn hình tổng quan: khách hôm
// nay/trong tháng, doanh thu, checkout quá hạn, phòng trống, khoản ứng
// trước và doanh thu 7 ngày gần nhất.
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	today := availability.FormatDay(now)
	monthStart := availability.FormatDay(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))

	var guests []models.Guest
	if err := config.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	rooms, err := loadRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	var purchases []models.Purchase
	if err := config.DB.Find(&purchases).Error; err != nil {
		response.ServerError(c)
		return
	}

	stats := dto.DashboardStats{TotalRooms: len(rooms)}

	for _, room := range rooms {
		if room.Status == constants.RoomStatusAvailable {
			stats.AvailableRooms++
		}
	}

	for _, g := range guests {
		created := availability.FormatDay(g.CreatedAt)
		if created == today {
			stats.TodayGuests++
		}
		if created >= monthStart && created <= today {
			stats.MonthGuests++
		}
		stats.TotalRevenue += g.TotalRoomCharge
		stats.AdvancePaymentsCollected += g.AdvancePaymentAmount

		// checkout quá hạn: còn checked_in mà ngày đi đã qua
		if g.Status == constants.GuestStatusCheckedIn && g.DateOfDeparture <= today {
			stats.PendingCheckouts++
		}
	}

	for _, p := range purchases {
		stats.TotalRevenue += p.TotalPrice
	}

	stats.UpcomingReservations = len(availability.UpcomingBookings(guests, 30, now))

	// Doanh thu 7 ngày gần nhất theo ngày tạo booking
	revenueByDay := make(map[string]float64)
	for _, g := range guests {
		revenueByDay[availability.FormatDay(g.CreatedAt)] += g.TotalRoomCharge
	}
	for i := 6; i >= 0; i-- {
		d := availability.FormatDay(now.AddDate(0, 0, -i))
		stats.RevenueLast7Days = append(stats.RevenueLast7Days, dto.DailyRevenue{
			Date:   d,
			Amount: revenueByDay[d],
		})
	}

	response.Success(c, stats)
}
