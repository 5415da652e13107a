package services

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"frontdesk/config"
	"frontdesk/constants"
	"frontdesk/models"

	"github.com/olahol/melody"
)

// CheckoutNotifierAdapter cho phép cron job gọi NotifyDueCheckouts qua interface
type CheckoutNotifierAdapter struct{}

func (a *CheckoutNotifierAdapter) NotifyDueCheckouts(m *melody.Melody) error {
	return NotifyDueCheckouts(m)
}

// GetDueCheckouts lấy danh sách khách còn checked_in mà ngày đi đã đến hạn
func GetDueCheckouts() ([]models.Guest, error) {
	var guests []models.Guest

	loc, err := time.LoadLocation("Asia/Colombo")
	if err != nil {
		return nil, fmt.Errorf("❌ Lỗi khi tải múi giờ: %w", err)
	}

	today := time.Now().In(loc).Format("2006-01-02")

	err = config.DB.
		Where("status = ? AND date_of_departure <= ?", constants.GuestStatusCheckedIn, today).
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("❌ Lỗi khi truy vấn khách đến hạn trả phòng: %w", err)
	}

	return guests, nil
}

// NotifyDueCheckouts nhắc lễ tân các khách đã quá ngày đi qua websocket
func NotifyDueCheckouts(m *melody.Melody) error {
	guests, err := GetDueCheckouts()
	if err != nil {
		log.Println("❌ Lỗi lấy danh sách đến hạn:", err)
		return err
	}

	if len(guests) == 0 {
		log.Println("ℹ️ Không có khách nào đến hạn trả phòng hôm nay.")
		return nil
	}

	for _, g := range guests {
		message := fmt.Sprintf("🔔 Khách %s (GRC %s) phòng %v đã đến hạn trả phòng ngày %s.",
			g.NameWithInitials, g.GRCNumber, []string(g.RoomNumbers), g.DateOfDeparture)
		m.Broadcast([]byte(message))
	}

	// Làm mới cache danh sách khách để màn hình lễ tân thấy trạng thái quá hạn
	_ = DeleteFromRedis(config.Ctx, config.RedisClient, "guests:all")

	log.Printf("✅ Đã gửi nhắc trả phòng cho %d khách.\n", len(guests))
	return nil
}
