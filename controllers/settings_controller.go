package controllers

import (
	"frontdesk/config"
	"frontdesk/models"
	"frontdesk/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSettings trả về cấu hình khách sạn, tạo bản ghi mặc định nếu chưa có
func GetSettings(c *gin.Context) {
	var setting models.Setting
	if err := config.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		setting = models.Setting{HotelName: "Hotel", Currency: "LKR"}
		if err := config.DB.Create(&setting).Error; err != nil {
			response.ServerError(c)
			return
		}
	}
	response.Success(c, setting)
}

type updateSettingsRequest struct {
	HotelName     string  `json:"hotelName"`
	Address       string  `json:"address"`
	TaxPercentage float64 `json:"taxPercentage"`
	Currency      string  `json:"currency"`
}

func UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if req.TaxPercentage < 0 || req.TaxPercentage > 100 {
		response.BadRequest(c, "Tax percentage must be between 0 and 100")
		return
	}

	var setting models.Setting
	if err := config.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		setting = models.Setting{}
	}

	setting.HotelName = req.HotelName
	setting.Address = req.Address
	setting.TaxPercentage = req.TaxPercentage
	if req.Currency != "" {
		setting.Currency = req.Currency
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, setting)
}
