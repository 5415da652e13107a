package validator

import (
	"regexp"

	"frontdesk/availability"
	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
)

// ValidateGuest validate thông tin khách trước khi ghi DB
func ValidateGuest(guest *models.Guest) error {
	if guest.NameWithInitials == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
	}

	if guest.MobileNumber != "" && !isValidPhone(guest.MobileNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid mobile number", nil)
	}

	if len(guest.RoomNumbers) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one room is required", nil)
	}

	if err := ValidateDateRange(guest.DateOfArrival, guest.DateOfDeparture); err != nil {
		return err
	}

	switch guest.Status {
	case constants.GuestStatusReserved, constants.GuestStatusCheckedIn,
		constants.GuestStatusCheckedOut, constants.GuestStatusCancelled:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid guest status: "+guest.Status, nil)
	}

	if guest.NumberOfAdults < 0 || guest.NumberOfChildren < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Occupant counts cannot be negative", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}

	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type is required", nil)
	}

	if room.Floor < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Floor must be at least 1", nil)
	}

	if room.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Base price cannot be negative", nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}

	return nil
}

// ValidateDateRange kiểm tra khoảng [arrival, departure) hợp lệ:
// cả hai parse được và departure sau arrival (không nhận booking 0 đêm)
func ValidateDateRange(dateOfArrival, dateOfDeparture string) error {
	arrival, err := availability.ParseDay(dateOfArrival)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid arrival date, expected YYYY-MM-DD", err)
	}

	departure, err := availability.ParseDay(dateOfDeparture)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid departure date, expected YYYY-MM-DD", err)
	}

	if !departure.After(arrival) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Departure must be after arrival", nil)
	}

	return nil
}

// ValidatePurchase validate một khoản chi tiêu thêm
func ValidatePurchase(purchase *models.Purchase) error {
	if purchase.ItemName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Item name is required", nil)
	}

	if purchase.Quantity <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Quantity must be positive", nil)
	}

	if purchase.UnitPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Unit price cannot be negative", nil)
	}

	return nil
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	return phoneRegex.MatchString(phone)
}
