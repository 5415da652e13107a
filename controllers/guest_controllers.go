package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"frontdesk/availability"
	"frontdesk/config"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const guestCacheKey = "guests:all"

type GuestController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	service *services.GuestService
}

func NewGuestController(db *gorm.DB, redisCli *redis.Client) *GuestController {
	return &GuestController{
		DB:    db,
		Redis: redisCli,
		service: services.NewGuestService(services.GuestServiceOptions{
			DB:     db,
			Logger: logger.NewDefaultLogger(logger.InfoLevel),
		}),
	}
}

func (gc *GuestController) invalidateGuestCache() {
	if gc.Redis == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, gc.Redis, guestCacheKey)
	_ = services.DeleteFromRedis(config.Ctx, gc.Redis, roomCacheKey)
}

func (gc *GuestController) GetGuests(c *gin.Context) {
	var allGuests []models.Guest

	// Lấy dữ liệu từ Redis Cache, miss thì truy vấn DB
	cacheHit := false
	if gc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, gc.Redis, guestCacheKey, &allGuests); err == nil && len(allGuests) > 0 {
			cacheHit = true
		}
	}
	if !cacheHit {
		if err := gc.DB.Order("created_at DESC").Find(&allGuests).Error; err != nil {
			response.ServerError(c)
			return
		}

		if gc.Redis != nil {
			if err := services.SetToRedis(config.Ctx, gc.Redis, guestCacheKey, allGuests, 10*time.Minute); err != nil {
				log.Printf("Failed to cache guest list: %v", err)
			}
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	roomFilter := c.Query("roomNumber")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filteredGuests := make([]models.Guest, 0)
	for _, guest := range allGuests {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(guest.NameWithInitials), strings.ToLower(decodedName)) {
				continue
			}
		}
		if statusFilter != "" && guest.Status != statusFilter {
			continue
		}
		if roomFilter != "" {
			found := false
			for _, rn := range guest.RoomNumbers {
				if rn == roomFilter {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if fromDateStr != "" && guest.DateOfArrival < fromDateStr {
			continue
		}
		if toDateStr != "" && guest.DateOfArrival > toDateStr {
			continue
		}
		filteredGuests = append(filteredGuests, guest)
	}

	totalFiltered := len(filteredGuests)

	// Xếp theo update mới nhất
	sort.Slice(filteredGuests, func(i, j int) bool {
		return filteredGuests[i].UpdatedAt.After(filteredGuests[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredGuests = []models.Guest{}
	} else if end > totalFiltered {
		filteredGuests = filteredGuests[start:]
	} else {
		filteredGuests = filteredGuests[start:end]
	}

	response.SuccessWithPagination(c, filteredGuests, page, limit, totalFiltered)
}

func (gc *GuestController) GetGuestDetail(c *gin.Context) {
	guestId := c.Param("id")

	var guest models.Guest
	if err := gc.DB.Where("id = ?", guestId).First(&guest).Error; err != nil {
		response.NotFound(c)
		return
	}

	var purchases []models.Purchase
	if err := gc.DB.Where("guest_id = ?", guest.ID).Order("purchase_date DESC").Find(&purchases).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"guest":     guest,
		"purchases": purchases,
	})
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var request dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status := request.Status
	if status == "" {
		status = constants.GuestStatusCheckedIn
	}

	guest := models.Guest{
		NameWithInitials:     request.NameWithInitials,
		PassportNIC:          request.PassportNIC,
		Nationality:          request.Nationality,
		MobileNumber:         request.MobileNumber,
		ReservationNumber:    request.ReservationNumber,
		VoucherNumber:        request.VoucherNumber,
		RoomNumbers:          request.RoomNumbers,
		RoomType:             request.RoomType,
		NumberOfAdults:       request.NumberOfAdults,
		NumberOfChildren:     request.NumberOfChildren,
		ChildrenAges:         request.ChildrenAges,
		MealPlan:             request.MealPlan,
		DateOfArrival:        request.DateOfArrival,
		DateOfDeparture:      request.DateOfDeparture,
		TimeOfArrival:        request.TimeOfArrival,
		TimeOfDeparture:      request.TimeOfDeparture,
		Status:               status,
		AdvancePaymentAmount: request.AdvancePaymentAmount,
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := gc.service.Register(&guest); err != nil {
		appErr := errors.GetAppError(err)
		utils.LogError("Đăng ký khách thất bại: %v", err)
		switch appErr.Code {
		case errors.ErrCodeRoomUnavailable:
			response.Conflict(c, appErr.Message, nil)
		case errors.ErrCodeDBError:
			response.ServerError(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}

	utils.LogInfo("Đăng ký khách %s (GRC %s) phòng %v", guest.NameWithInitials, guest.GRCNumber, []string(guest.RoomNumbers))

	gc.invalidateGuestCache()
	response.Success(c, guest)
}

func (gc *GuestController) CheckOutGuest(c *gin.Context) {
	var req dto.GuestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := gc.service.CheckOut(req.GuestID)
	if err != nil {
		appErr := errors.GetAppError(err)
		switch appErr.Code {
		case errors.ErrCodeGuestNotFound:
			response.NotFound(c)
		case errors.ErrCodeDBError:
			response.ServerError(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}

	gc.invalidateGuestCache()
	response.Success(c, guest)
}

func (gc *GuestController) CancelGuest(c *gin.Context) {
	var req dto.GuestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := gc.service.Cancel(req.GuestID)
	if err != nil {
		appErr := errors.GetAppError(err)
		switch appErr.Code {
		case errors.ErrCodeGuestNotFound:
			response.NotFound(c)
		case errors.ErrCodeDBError:
			response.ServerError(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}

	gc.invalidateGuestCache()
	response.Success(c, guest)
}

// ExtendStay dời ngày trả phòng. Xung đột không phải lỗi hệ thống: trả
// 409 kèm chi tiết booking chặn để lễ tân tự dàn xếp.
func (gc *GuestController) ExtendStay(c *gin.Context) {
	var req dto.ExtendStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, conflict, err := gc.service.Extend(req.GuestID, req.DateOfDeparture)
	if err != nil {
		appErr := errors.GetAppError(err)
		switch appErr.Code {
		case errors.ErrCodeGuestNotFound:
			response.NotFound(c)
		case errors.ErrCodeDBError:
			response.ServerError(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}
	if conflict != nil {
		response.Conflict(c, "Extension conflicts with another booking", conflict)
		return
	}

	gc.invalidateGuestCache()
	response.Success(c, result)
}

// GetUpcomingGuests trả các booking có ngày đến trong N ngày tới
func (gc *GuestController) GetUpcomingGuests(c *gin.Context) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsedDays, err := strconv.Atoi(daysStr)
		if err != nil || parsedDays < 0 {
			response.BadRequest(c, "days must be a non-negative integer")
			return
		}
		days = parsedDays
	}

	var guests []models.Guest
	if err := gc.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	upcoming := availability.UpcomingBookings(guests, days, time.Now())
	response.Success(c, upcoming)
}
