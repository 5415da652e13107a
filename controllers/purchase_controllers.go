package controllers

import (
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

func GetPurchasesByGuest(c *gin.Context) {
	guestId := c.Param("id")

	var purchases []models.Purchase
	if err := config.DB.Where("guest_id = ?", guestId).Order("purchase_date DESC").Find(&purchases).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, purchases)
}

func AddPurchase(c *gin.Context) {
	var request dto.AddPurchaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, request.GuestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	category := request.Category
	if category == "" {
		category = constants.PurchaseCategoryRestaurant
	}

	purchase := models.Purchase{
		GuestID:    request.GuestID,
		ItemName:   request.ItemName,
		Category:   category,
		Quantity:   request.Quantity,
		UnitPrice:  request.UnitPrice,
		TotalPrice: float64(request.Quantity) * request.UnitPrice,
	}

	if err := validator.ValidatePurchase(&purchase); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&purchase).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, purchase)
}

func DeletePurchase(c *gin.Context) {
	purchaseId := c.Param("id")

	var purchase models.Purchase
	if err := config.DB.First(&purchase, purchaseId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&purchase).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Purchase deleted"})
}

// GetGuestBill trả bảng kê đầy đủ: tiền phòng + chi tiêu + thuế theo
// cấu hình khách sạn, kèm khoản ứng trước đã thu
func GetGuestBill(c *gin.Context) {
	guestId := c.Param("id")

	var guest models.Guest
	if err := config.DB.Where("id = ?", guestId).First(&guest).Error; err != nil {
		response.NotFound(c)
		return
	}

	var purchases []models.Purchase
	if err := config.DB.Where("guest_id = ?", guest.ID).Order("purchase_date DESC").Find(&purchases).Error; err != nil {
		response.ServerError(c)
		return
	}

	var setting models.Setting
	taxPercentage := 0.0
	if err := config.DB.First(&setting).Error; err == nil {
		taxPercentage = setting.TaxPercentage
	}

	bill := services.CalculateBillTotal(guest.TotalRoomCharge, purchases, taxPercentage, guest.AdvancePaymentAmount)

	response.Success(c, dto.GuestBillResponse{
		Guest:     guest,
		Purchases: purchases,
		Bill:      bill,
	})
}
