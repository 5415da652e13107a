package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CheckoutNotifier định nghĩa interface cho việc nhắc khách đến hạn trả phòng
type CheckoutNotifier interface {
	NotifyDueCheckouts(m *melody.Melody) error
}

var checkoutNotifier CheckoutNotifier

// SetCheckoutNotifier thiết lập implementation cho CheckoutNotifier
func SetCheckoutNotifier(notifier CheckoutNotifier) {
	checkoutNotifier = notifier
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét khách đến hạn trả phòng lúc: %v", now)
		if checkoutNotifier == nil {
			log.Printf("Lỗi: CheckoutNotifier chưa được thiết lập")
			return
		}
		if err := checkoutNotifier.NotifyDueCheckouts(m); err != nil {
			log.Printf("Lỗi khi quét khách đến hạn trả phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
