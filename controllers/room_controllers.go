package controllers

import (
	"log"
	"time"

	"frontdesk/availability"
	"frontdesk/config"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

const roomCacheKey = "rooms:all"

func invalidateRoomCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomCacheKey)
}

func loadRooms() ([]models.Room, error) {
	var rooms []models.Room

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := config.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomCacheKey, rooms, 60*time.Minute); err != nil {
			log.Printf("Failed to cache room list: %v", err)
		}
	}
	return rooms, nil
}

func GetAllRooms(c *gin.Context) {
	rooms, err := loadRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	statusFilter := c.Query("status")
	typeFilter := c.Query("roomType")

	filtered := make([]models.Room, 0)
	for _, room := range rooms {
		if statusFilter != "" && room.Status != statusFilter {
			continue
		}
		if typeFilter != "" && room.RoomType != typeFilter {
			continue
		}
		filtered = append(filtered, room)
	}

	response.Success(c, filtered)
}

func GetRoomDetail(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	var room models.Room
	if err := config.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, room)
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status := request.Status
	if status == "" {
		status = constants.RoomStatusAvailable
	}
	floor := request.Floor
	if floor == 0 {
		floor = 1
	}

	room := models.Room{
		RoomNumber: request.RoomNumber,
		RoomType:   request.RoomType,
		Floor:      floor,
		BasePrice:  request.BasePrice,
		Status:     status,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	var roomType models.RoomType
	if err := config.DB.Where("code = ?", room.RoomType).First(&roomType).Error; err != nil {
		response.BadRequest(c, "Unknown room type: "+room.RoomType)
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

func UpdateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_number = ?", request.RoomNumber).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.RoomType != "" {
		room.RoomType = request.RoomType
	}
	if request.Floor > 0 {
		room.Floor = request.Floor
	}
	if request.BasePrice > 0 {
		room.BasePrice = request.BasePrice
	}
	if request.Status != "" {
		room.Status = request.Status
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

func ChangeRoomStatus(c *gin.Context) {
	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_number = ?", req.RoomNumber).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, room)
}

// GetAvailableRooms trả danh sách phòng trống cho khoảng [checkIn, checkOut).
// Controller validate khoảng ngày trước — engine trả rỗng với input xấu,
// còn thông báo lỗi cho người dùng là việc của tầng này.
func GetAvailableRooms(c *gin.Context) {
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	roomType := c.Query("roomType")

	if checkIn == "" || checkOut == "" {
		response.BadRequest(c, "checkIn and checkOut are required")
		return
	}
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	start, _ := availability.ParseDay(checkIn)
	end, _ := availability.ParseDay(checkOut)

	rooms, err := loadRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	available := availability.AvailableRooms(rooms, guests, start, end, roomType, nil)
	response.Success(c, available)
}

// GetRoomTypeStats đếm tổng số phòng và số phòng đang có khách theo loại
func GetRoomTypeStats(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Order("code").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	rooms, err := loadRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	stats := make([]dto.RoomTypeStats, 0, len(roomTypes))
	for _, rt := range roomTypes {
		s := dto.RoomTypeStats{Code: rt.Code, Name: rt.Name}
		for _, room := range rooms {
			if room.RoomType != rt.Code {
				continue
			}
			s.Total++
			if room.Status == constants.RoomStatusOccupied {
				s.Occupied++
			}
		}
		stats = append(stats, s)
	}

	response.Success(c, stats)
}

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Order("code").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomTypes)
}

func CreateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if roomType.Code == "" || roomType.Name == "" {
		response.BadRequest(c, "code and name are required")
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomType)
}
