package controllers

import (
	"sort"
	"time"

	"frontdesk/availability"
	"frontdesk/config"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// GetForecast tổng hợp số liệu dự báo cho một khoảng ngày: tỷ lệ lấp
// đầy, xu hướng theo ngày, doanh thu kỳ vọng, phân bố loại phòng và số
// booking sắp đến trong 60 ngày.
func GetForecast(c *gin.Context) {
	now := time.Now()
	startDate := c.DefaultQuery("startDate", availability.FormatDay(availability.Day(now)))
	endDate := c.DefaultQuery("endDate", availability.FormatDay(availability.Day(now).AddDate(0, 0, 30)))
	roomTypeFilter := c.Query("roomType")

	if err := validator.ValidateDateRange(startDate, endDate); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}
	start, _ := availability.ParseDay(startDate)
	end, _ := availability.ParseDay(endDate)

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	rooms, err := loadRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	filteredGuests := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if g.Status == constants.GuestStatusCancelled {
			continue
		}
		if roomTypeFilter != "" && g.RoomType != roomTypeFilter {
			continue
		}
		filteredGuests = append(filteredGuests, g)
	}

	occupancy := availability.CalendarOccupancy(filteredGuests, start, end)
	percentage := availability.OccupancyPercentage(occupancy, len(rooms))
	upcoming := availability.UpcomingBookings(filteredGuests, 60, now)

	expectedRevenue := 0.0
	for _, g := range filteredGuests {
		expectedRevenue += g.TotalRoomCharge
	}

	// Xu hướng theo ngày, key map sắp lại cho ổn định
	days := make([]string, 0, len(occupancy))
	for d := range occupancy {
		days = append(days, d)
	}
	sort.Strings(days)

	dailyOccupancy := make([]dto.DailyOccupancy, 0, len(days))
	for _, d := range days {
		point := dto.DailyOccupancy{Date: d, Rooms: occupancy[d]}
		if len(rooms) > 0 {
			point.Occupancy = availability.OccupancyPercentage(map[string]int{d: occupancy[d]}, len(rooms))
		}
		dailyOccupancy = append(dailyOccupancy, point)
	}

	distribution := make([]dto.RoomTypeCount, 0)
	counts := make(map[string]int)
	for _, room := range rooms {
		if roomTypeFilter != "" && room.RoomType != roomTypeFilter {
			continue
		}
		counts[room.RoomType]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		distribution = append(distribution, dto.RoomTypeCount{Name: t, Value: counts[t]})
	}

	response.Success(c, dto.ForecastResponse{
		OccupancyPercentage:  percentage,
		ExpectedRevenue:      expectedRevenue,
		UpcomingReservations: len(upcoming),
		DailyOccupancy:       dailyOccupancy,
		RoomTypeDistribution: distribution,
	})
}

// GetCalendarOccupancy trả map ngày -> số phòng có khách cho một khoảng.
// Cửa sổ báo cáo bao gồm cả hai đầu nên một ngày đơn lẻ (start == end)
// vẫn hợp lệ, khác với khoảng lưu trú nửa mở.
func GetCalendarOccupancy(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "startDate and endDate are required")
		return
	}
	start, err := availability.ParseDay(startDate)
	if err != nil {
		response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	end, err := availability.ParseDay(endDate)
	if err != nil {
		response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		response.BadRequest(c, "endDate must not be before startDate")
		return
	}

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, availability.CalendarOccupancy(guests, start, end))
}
