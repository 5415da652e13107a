package availability

import (
	"time"

	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
)

// ExtensionConflict mô tả booking chặn việc gia hạn: đủ thông tin để lễ
// tân tự liên hệ xử lý, engine không tự giải quyết.
type ExtensionConflict struct {
	RoomNumber      string `json:"roomNumber"`
	GuestName       string `json:"guestName"`
	GRCNumber       string `json:"grcNumber"`
	DateOfArrival   string `json:"dateOfArrival"`
	DateOfDeparture string `json:"dateOfDeparture"`
}

// CheckExtension kiểm tra việc dời ngày trả phòng của guest sang
// newDeparture có đụng booking khác không. Soát đủ mọi phòng trong
// RoomNumbers (không chỉ phòng đầu) trên khoảng [departure hiện tại,
// newDeparture). Trả về xung đột đầu tiên tìm thấy, hoặc nil nếu gia hạn
// được. Booking đã hủy hoặc đã check-out không chặn — và bản thân chúng
// cũng không còn gì để gia hạn, trả lỗi ngay.
func CheckExtension(guest models.Guest, guests []models.Guest, newDeparture time.Time) (*ExtensionConflict, error) {
	if guest.Status == constants.GuestStatusCancelled {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Cannot extend a cancelled booking", nil)
	}
	if guest.Status == constants.GuestStatusCheckedOut {
		return nil, errors.NewAppError(errors.ErrCodeAlreadyCheckedOut, "Cannot extend a completed stay", nil)
	}

	_, currentEnd, ok := parseStay(guest)
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Booking has invalid stay dates", nil)
	}
	if !newDeparture.After(currentEnd) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "New departure must be after current departure", nil)
	}

	for _, roomNumber := range guest.RoomNumbers {
		for _, other := range guests {
			if other.ID == guest.ID {
				continue
			}
			if !blocksForward(other.Status) {
				continue
			}
			if !containsRoom(other.RoomNumbers, roomNumber) {
				continue
			}
			oStart, oEnd, ok := parseStay(other)
			if !ok {
				continue
			}
			if Overlaps(currentEnd, newDeparture, oStart, oEnd) {
				return &ExtensionConflict{
					RoomNumber:      roomNumber,
					GuestName:       other.NameWithInitials,
					GRCNumber:       other.GRCNumber,
					DateOfArrival:   other.DateOfArrival,
					DateOfDeparture: other.DateOfDeparture,
				}, nil
			}
		}
	}
	return nil, nil
}

// ExtensionCharge tính số đêm thêm và tiền phòng thêm khi gia hạn. Đơn
// giá mỗi đêm mỗi phòng được suy ngược từ tổng tiền hiện tại
// (total / số đêm / số phòng) thay vì đọc lại giá gốc của phòng — giữ
// nguyên các lần sửa giá tay trong quá khứ.
func ExtensionCharge(guest models.Guest, newDeparture time.Time) (additionalNights int, additionalCharge float64, err error) {
	start, end, ok := parseStay(guest)
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Booking has invalid stay dates", nil)
	}
	if !newDeparture.After(end) {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidRange, "New departure must be after current departure", nil)
	}

	numRooms := len(guest.RoomNumbers)
	if numRooms == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeValidation, "Booking has no rooms assigned", nil)
	}

	currentNights := Nights(start, end)
	additionalNights = Nights(end, newDeparture)

	ratePerRoomNight := guest.TotalRoomCharge / float64(currentNights) / float64(numRooms)
	additionalCharge = ratePerRoomNight * float64(additionalNights) * float64(numRooms)
	return additionalNights, additionalCharge, nil
}
