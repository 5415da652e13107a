package availability

import (
	"testing"

	"frontdesk/constants"
	"frontdesk/models"
)

func TestCheckExtensionReportsBlockingRoom(t *testing.T) {
	current := booking(1, []string{"101", "102"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	blocker := booking(2, []string{"102"}, "2024-09-06", "2024-09-08", constants.GuestStatusReserved)
	blocker.NameWithInitials = "Mr. S. Perera"
	blocker.GRCNumber = "GRC-20240830-0007"

	conflict, err := CheckExtension(current, []models.Guest{current, blocker}, day(t, "2024-09-07"))
	if err != nil {
		t.Fatalf("CheckExtension() error = %v", err)
	}
	if conflict == nil {
		t.Fatal("expected a conflict on room 102")
	}
	if conflict.RoomNumber != "102" {
		t.Errorf("conflict.RoomNumber = %q, want %q (room 101 is unaffected)", conflict.RoomNumber, "102")
	}
	if conflict.GuestName != "Mr. S. Perera" {
		t.Errorf("conflict.GuestName = %q, want the blocking guest's name", conflict.GuestName)
	}
	if conflict.DateOfArrival != "2024-09-06" || conflict.DateOfDeparture != "2024-09-08" {
		t.Errorf("conflict range = [%s, %s), want the blocker's dates", conflict.DateOfArrival, conflict.DateOfDeparture)
	}
}

func TestCheckExtensionNoConflict(t *testing.T) {
	current := booking(1, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	// next guest arrives exactly on the proposed new departure: turnover, fine
	next := booking(2, []string{"101"}, "2024-09-08", "2024-09-10", constants.GuestStatusReserved)

	conflict, err := CheckExtension(current, []models.Guest{current, next}, day(t, "2024-09-08"))
	if err != nil {
		t.Fatalf("CheckExtension() error = %v", err)
	}
	if conflict != nil {
		t.Errorf("expected no conflict, got %+v", conflict)
	}
}

func TestCheckExtensionRejectsInactiveBooking(t *testing.T) {
	cancelled := booking(1, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusCancelled)
	if _, err := CheckExtension(cancelled, nil, day(t, "2024-09-08")); err == nil {
		t.Error("expected an error extending a cancelled booking")
	}

	checkedOut := booking(2, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedOut)
	if _, err := CheckExtension(checkedOut, nil, day(t, "2024-09-08")); err == nil {
		t.Error("expected an error extending a checked-out booking")
	}

	// reserved bookings có thể dời ngày như thường
	reserved := booking(3, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusReserved)
	if _, err := CheckExtension(reserved, nil, day(t, "2024-09-08")); err != nil {
		t.Errorf("reserved booking extension error = %v, want nil", err)
	}
}

func TestCheckExtensionIgnoresNonBlockingStatuses(t *testing.T) {
	current := booking(1, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	cancelled := booking(2, []string{"101"}, "2024-09-05", "2024-09-09", constants.GuestStatusCancelled)
	checkedOut := booking(3, []string{"101"}, "2024-09-05", "2024-09-09", constants.GuestStatusCheckedOut)

	conflict, err := CheckExtension(current, []models.Guest{current, cancelled, checkedOut}, day(t, "2024-09-08"))
	if err != nil {
		t.Fatalf("CheckExtension() error = %v", err)
	}
	if conflict != nil {
		t.Errorf("cancelled/checked-out bookings must not block an extension, got %+v", conflict)
	}
}

func TestCheckExtensionChecksEveryRoom(t *testing.T) {
	// blocker touches only the LAST room of the booking
	current := booking(1, []string{"101", "102", "103"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	blocker := booking(2, []string{"103"}, "2024-09-05", "2024-09-07", constants.GuestStatusReserved)

	conflict, err := CheckExtension(current, []models.Guest{current, blocker}, day(t, "2024-09-06"))
	if err != nil {
		t.Fatalf("CheckExtension() error = %v", err)
	}
	if conflict == nil || conflict.RoomNumber != "103" {
		t.Errorf("conflict = %+v, want a conflict on room 103", conflict)
	}
}

func TestCheckExtensionInvalidNewDeparture(t *testing.T) {
	current := booking(1, []string{"101"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)

	if _, err := CheckExtension(current, nil, day(t, "2024-09-05")); err == nil {
		t.Error("new departure equal to current must be rejected")
	}
	if _, err := CheckExtension(current, nil, day(t, "2024-09-03")); err == nil {
		t.Error("new departure before current must be rejected")
	}
}

func TestExtensionCharge(t *testing.T) {
	// 4 nights x 2 rooms, 400 total -> 50 per room-night
	g := booking(1, []string{"101", "102"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	g.TotalRoomCharge = 400

	nights, charge, err := ExtensionCharge(g, day(t, "2024-09-07"))
	if err != nil {
		t.Fatalf("ExtensionCharge() error = %v", err)
	}
	if nights != 2 {
		t.Errorf("additional nights = %d, want 2", nights)
	}
	if charge != 200 {
		t.Errorf("additional charge = %v, want 200", charge)
	}
}

func TestExtensionChargePreservesManualRate(t *testing.T) {
	// total manually discounted to 360: implied rate 45 per room-night,
	// NOT the room's base price
	g := booking(1, []string{"101", "102"}, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	g.TotalRoomCharge = 360

	_, charge, err := ExtensionCharge(g, day(t, "2024-09-06"))
	if err != nil {
		t.Fatalf("ExtensionCharge() error = %v", err)
	}
	if charge != 90 {
		t.Errorf("additional charge = %v, want 90 (45 x 1 night x 2 rooms)", charge)
	}
}

func TestExtensionChargeGuards(t *testing.T) {
	noRooms := booking(1, nil, "2024-09-01", "2024-09-05", constants.GuestStatusCheckedIn)
	if _, _, err := ExtensionCharge(noRooms, day(t, "2024-09-07")); err == nil {
		t.Error("booking without rooms must be rejected")
	}

	badDates := booking(2, []string{"101"}, "2024-09-05", "2024-09-01", constants.GuestStatusCheckedIn)
	if _, _, err := ExtensionCharge(badDates, day(t, "2024-09-07")); err == nil {
		t.Error("negative-night booking must be rejected")
	}
}
