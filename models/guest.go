package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Guest là một lượt lưu trú: một booking có thể giữ nhiều phòng.
// DateOfArrival/DateOfDeparture lưu dạng chuỗi YYYY-MM-DD,
// khoảng lưu trú là nửa mở [arrival, departure).
type Guest struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	GRCNumber            string         `json:"grcNumber" gorm:"uniqueIndex;size:20"`
	NameWithInitials     string         `json:"nameWithInitials"`
	PassportNIC          string         `json:"passportNic"`
	Nationality          string         `json:"nationality"`
	MobileNumber         string         `json:"mobileNumber"`
	ReservationNumber    string         `json:"reservationNumber"`
	VoucherNumber        string         `json:"voucherNumber"`
	RoomNumbers          pq.StringArray `json:"roomNumbers" gorm:"type:text[]"`
	RoomType             string         `json:"roomType" gorm:"size:10"`
	NumberOfRooms        int            `json:"numberOfRooms"`
	NumberOfAdults       int            `json:"numberOfAdults"`
	NumberOfChildren     int            `json:"numberOfChildren"`
	ChildrenAges         pq.Int64Array  `json:"childrenAges" gorm:"type:integer[]"`
	MealPlan             string         `json:"mealPlan" gorm:"size:10"`
	DateOfArrival        string         `json:"dateOfArrival" gorm:"size:10;index"`
	DateOfDeparture      string         `json:"dateOfDeparture" gorm:"size:10;index"`
	TimeOfArrival        string         `json:"timeOfArrival" gorm:"size:5"`
	TimeOfDeparture      string         `json:"timeOfDeparture" gorm:"size:5"`
	Status               string         `json:"status" gorm:"size:20;index"`
	TotalRoomCharge      float64        `json:"totalRoomCharge"`
	AdvancePaymentAmount float64        `json:"advancePaymentAmount"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate sinh số GRC tuần tự theo ngày: GRC-YYYYMMDD-NNNN
func (guest *Guest) BeforeCreate(tx *gorm.DB) (err error) {
	if guest.GRCNumber != "" {
		return nil
	}

	prefix := fmt.Sprintf("GRC-%s-", time.Now().Format("20060102"))

	var last Guest
	sequence := 1
	if err := tx.Model(&Guest{}).
		Where("grc_number LIKE ?", prefix+"%").
		Order("grc_number DESC").
		First(&last).Error; err == nil {
		parts := strings.Split(last.GRCNumber, "-")
		if lastSeq, convErr := strconv.Atoi(parts[len(parts)-1]); convErr == nil {
			sequence = lastSeq + 1
		}
	}

	guest.GRCNumber = fmt.Sprintf("%s%04d", prefix, sequence)
	return nil
}
