package routes

import (
	"frontdesk/controllers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	guestController := controllers.NewGuestController(db, redisCli)

	v1 := router.Group("/api/v1")
	v1.GET("/guests", guestController.GetGuests)
	v1.POST("/guests", guestController.CreateGuest)
	v1.GET("/guests/:id", guestController.GetGuestDetail)
	v1.PUT("/guestCheckout", guestController.CheckOutGuest)
	v1.PUT("/guestCancel", guestController.CancelGuest)
	v1.PUT("/guestExtend", guestController.ExtendStay)
	v1.GET("/guestUpcoming", guestController.GetUpcomingGuests)
	v1.GET("/guestSearch", controllers.SearchGuests)

	v1.GET("/room", controllers.GetAllRooms)
	v1.POST("/room", controllers.CreateRoom)
	v1.GET("/room/:roomNumber", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", controllers.UpdateRoom)
	v1.PUT("/roomStatus", controllers.ChangeRoomStatus)
	v1.GET("/checkRoom", controllers.GetAvailableRooms)
	v1.GET("/roomTypeStats", controllers.GetRoomTypeStats)
	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.POST("/roomTypes", controllers.CreateRoomType)

	v1.GET("/guests/:id/purchases", controllers.GetPurchasesByGuest)
	v1.POST("/purchases", controllers.AddPurchase)
	v1.DELETE("/purchases/:id", controllers.DeletePurchase)
	v1.GET("/guests/:id/bill", controllers.GetGuestBill)

	v1.GET("/forecast", controllers.GetForecast)
	v1.GET("/occupancy", controllers.GetCalendarOccupancy)
	v1.GET("/dashboard", controllers.GetDashboardStats)

	v1.GET("/settings", controllers.GetSettings)
	v1.PUT("/settings", controllers.UpdateSettings)
}
