package services

import (
	"fmt"

	"frontdesk/availability"
	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"

	"gorm.io/gorm"
)

// GuestService gom nghiệp vụ check-in / check-out / gia hạn lưu trú.
// Quy trình luôn là: đọc snapshot -> gọi availability engine -> ghi DB.
// Giữa bước kiểm tra và bước ghi không có khóa nào — hai lễ tân thao tác
// cùng lúc trên cùng khoảng ngày có thể ghi đè nhau; hệ thống chạy thật
// cần re-validate ngay trước commit hoặc constraint loại trừ ở Postgres.
type GuestService struct {
	db     *gorm.DB
	logger logger.Logger
}

type GuestServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewGuestService tạo instance mới của GuestService
func NewGuestService(opts GuestServiceOptions) *GuestService {
	return &GuestService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// snapshot đọc toàn bộ phòng và booking hiện có cho engine
func (s *GuestService) snapshot() ([]models.Room, []models.Guest, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load rooms", err)
	}
	var guests []models.Guest
	if err := s.db.Find(&guests).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load guests", err)
	}
	return rooms, guests, nil
}

// Register nhận một bản ghi khách mới: kiểm tra từng phòng còn trống qua
// engine, tính tiền phòng từ giá gốc của phòng đầu tiên được chọn, rồi
// ghi DB. Phòng được chuyển sang trạng thái occupied khi khách check-in
// ngay (trạng thái chỉ là cờ tham khảo, booking record mới là nguồn
// chân lý).
func (s *GuestService) Register(guest *models.Guest) error {
	if len(guest.RoomNumbers) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one room is required", nil)
	}

	start, err := availability.ParseDay(guest.DateOfArrival)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid arrival date", err)
	}
	end, err := availability.ParseDay(guest.DateOfDeparture)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid departure date", err)
	}
	if !end.After(start) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Departure must be after arrival", nil)
	}

	rooms, guests, err := s.snapshot()
	if err != nil {
		return err
	}

	roomByNumber := make(map[string]models.Room)
	for _, r := range rooms {
		roomByNumber[r.RoomNumber] = r
	}

	for _, rn := range guest.RoomNumbers {
		r, ok := roomByNumber[rn]
		if !ok {
			return errors.NewAppError(errors.ErrCodeRoomNotFound, fmt.Sprintf("Room %s does not exist", rn), nil)
		}
		if !availability.IsRoomAvailable(r, guests, start, end) {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, fmt.Sprintf("Room %s is not available for the selected dates", rn), nil)
		}
	}

	guest.NumberOfRooms = len(guest.RoomNumbers)

	if guest.TotalRoomCharge == 0 {
		basePrice := roomByNumber[guest.RoomNumbers[0]].BasePrice
		charge, err := CalculateRoomCharges(guest.DateOfArrival, guest.DateOfDeparture, guest.NumberOfRooms, basePrice)
		if err != nil {
			return err
		}
		guest.TotalRoomCharge = charge
	}

	if err := s.db.Create(guest).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to create guest", err)
	}

	if guest.Status == constants.GuestStatusCheckedIn {
		s.setRoomStatuses(guest.RoomNumbers, constants.RoomStatusOccupied)
	}

	s.logger.Info("Registered guest %s (%s), rooms %v, %s -> %s",
		guest.NameWithInitials, guest.GRCNumber, []string(guest.RoomNumbers), guest.DateOfArrival, guest.DateOfDeparture)
	return nil
}

// CheckOut chuyển khách sang checked_out và trả phòng về available
func (s *GuestService) CheckOut(guestID uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, guestID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeGuestNotFound, "Guest not found", err)
	}
	if guest.Status == constants.GuestStatusCheckedOut {
		return nil, errors.NewAppError(errors.ErrCodeAlreadyCheckedOut, "Guest already checked out", nil)
	}

	guest.Status = constants.GuestStatusCheckedOut
	if err := s.db.Save(&guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update guest", err)
	}

	s.setRoomStatuses(guest.RoomNumbers, constants.RoomStatusAvailable)

	s.logger.Info("Checked out guest %s (%s)", guest.NameWithInitials, guest.GRCNumber)
	return &guest, nil
}

// Cancel hủy một booking; phòng đang giữ được trả về available
func (s *GuestService) Cancel(guestID uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, guestID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeGuestNotFound, "Guest not found", err)
	}
	if guest.Status == constants.GuestStatusCheckedOut {
		return nil, errors.NewAppError(errors.ErrCodeAlreadyCheckedOut, "Cannot cancel a completed stay", nil)
	}

	wasCheckedIn := guest.Status == constants.GuestStatusCheckedIn
	guest.Status = constants.GuestStatusCancelled
	if err := s.db.Save(&guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update guest", err)
	}

	if wasCheckedIn {
		s.setRoomStatuses(guest.RoomNumbers, constants.RoomStatusAvailable)
	}

	s.logger.Info("Cancelled booking %s (%s)", guest.GRCNumber, guest.NameWithInitials)
	return &guest, nil
}

// ExtendResult là kết quả gia hạn thành công
type ExtendResult struct {
	Guest            models.Guest `json:"guest"`
	AdditionalNights int          `json:"additionalNights"`
	AdditionalCharge float64      `json:"additionalCharge"`
}

// Extend dời ngày trả phòng của khách. Trả về conflict (không phải lỗi)
// nếu một phòng của booking đụng booking khác trong khoảng gia hạn —
// lễ tân tự xử lý, hệ thống không tự giải quyết.
func (s *GuestService) Extend(guestID uint, newDeparture string) (*ExtendResult, *availability.ExtensionConflict, error) {
	var guest models.Guest
	if err := s.db.First(&guest, guestID).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeGuestNotFound, "Guest not found", err)
	}

	newEnd, err := availability.ParseDay(newDeparture)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid new departure date", err)
	}

	var guests []models.Guest
	if err := s.db.Find(&guests).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load guests", err)
	}

	conflict, err := availability.CheckExtension(guest, guests, newEnd)
	if err != nil {
		return nil, nil, err
	}
	if conflict != nil {
		s.logger.Info("Extension of %s blocked by %s on room %s", guest.GRCNumber, conflict.GRCNumber, conflict.RoomNumber)
		return nil, conflict, nil
	}

	nights, charge, err := availability.ExtensionCharge(guest, newEnd)
	if err != nil {
		return nil, nil, err
	}

	guest.DateOfDeparture = newDeparture
	guest.TotalRoomCharge += charge
	if err := s.db.Save(&guest).Error; err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to update guest", err)
	}

	s.logger.Info("Extended %s by %d night(s), +%.2f", guest.GRCNumber, nights, charge)
	return &ExtendResult{Guest: guest, AdditionalNights: nights, AdditionalCharge: charge}, nil, nil
}

func (s *GuestService) setRoomStatuses(roomNumbers []string, status string) {
	if len(roomNumbers) == 0 {
		return
	}
	if err := s.db.Model(&models.Room{}).
		Where("room_number IN ?", []string(roomNumbers)).
		Update("status", status).Error; err != nil {
		s.logger.Error("Failed to update room statuses to %s: %v", status, err)
	}
}
