package validator

import (
	"testing"

	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
)

func validGuest() *models.Guest {
	return &models.Guest{
		NameWithInitials: "Mr. K. Silva",
		MobileNumber:     "+94771234567",
		RoomNumbers:      []string{"101"},
		DateOfArrival:    "2024-01-10",
		DateOfDeparture:  "2024-01-12",
		Status:           constants.GuestStatusCheckedIn,
		NumberOfAdults:   2,
	}
}

func TestValidateGuest(t *testing.T) {
	if err := ValidateGuest(validGuest()); err != nil {
		t.Fatalf("valid guest rejected: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*models.Guest)
		wantCode errors.ErrorCode
	}{
		{"missing name", func(g *models.Guest) { g.NameWithInitials = "" }, errors.ErrCodeRequiredField},
		{"bad phone", func(g *models.Guest) { g.MobileNumber = "call-me" }, errors.ErrCodeInvalidPhone},
		{"no rooms", func(g *models.Guest) { g.RoomNumbers = nil }, errors.ErrCodeRequiredField},
		{"zero-night stay", func(g *models.Guest) { g.DateOfDeparture = g.DateOfArrival }, errors.ErrCodeInvalidRange},
		{"departure before arrival", func(g *models.Guest) { g.DateOfDeparture = "2024-01-08" }, errors.ErrCodeInvalidRange},
		{"bad date format", func(g *models.Guest) { g.DateOfArrival = "10/01/2024" }, errors.ErrCodeInvalidFormat},
		{"unknown status", func(g *models.Guest) { g.Status = "sleeping" }, errors.ErrCodeInvalidStatus},
		{"negative adults", func(g *models.Guest) { g.NumberOfAdults = -1 }, errors.ErrCodeInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGuest()
			tt.mutate(g)
			err := ValidateGuest(g)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErr := errors.GetAppError(err); appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	room := &models.Room{
		RoomNumber: "101",
		RoomType:   "DBL",
		Floor:      1,
		BasePrice:  5000,
		Status:     constants.RoomStatusAvailable,
	}
	if err := ValidateRoom(room); err != nil {
		t.Fatalf("valid room rejected: %v", err)
	}

	bad := *room
	bad.Status = "broken"
	if err := ValidateRoom(&bad); err == nil {
		t.Error("unknown room status accepted")
	}

	bad = *room
	bad.BasePrice = -1
	if err := ValidateRoom(&bad); err == nil {
		t.Error("negative base price accepted")
	}

	bad = *room
	bad.Floor = 0
	if err := ValidateRoom(&bad); err == nil {
		t.Error("floor 0 accepted")
	}
}

func TestValidatePurchase(t *testing.T) {
	p := &models.Purchase{ItemName: "Dinner", Quantity: 1, UnitPrice: 2500}
	if err := ValidatePurchase(p); err != nil {
		t.Fatalf("valid purchase rejected: %v", err)
	}

	if err := ValidatePurchase(&models.Purchase{ItemName: "", Quantity: 1}); err == nil {
		t.Error("empty item name accepted")
	}
	if err := ValidatePurchase(&models.Purchase{ItemName: "x", Quantity: 0}); err == nil {
		t.Error("zero quantity accepted")
	}
	if err := ValidatePurchase(&models.Purchase{ItemName: "x", Quantity: 1, UnitPrice: -5}); err == nil {
		t.Error("negative unit price accepted")
	}
}
