package availability

import (
	"testing"
	"time"

	"frontdesk/constants"
	"frontdesk/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func room(number, roomType, status string) models.Room {
	return models.Room{RoomNumber: number, RoomType: roomType, Status: status}
}

func booking(id uint, rooms []string, arrival, departure, status string) models.Guest {
	return models.Guest{
		ID:              id,
		RoomNumbers:     rooms,
		DateOfArrival:   arrival,
		DateOfDeparture: departure,
		Status:          status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2024-01-01", "2024-01-03", "2024-01-05", "2024-01-08", false},
		{"disjoint after", "2024-01-05", "2024-01-08", "2024-01-01", "2024-01-03", false},
		{"partial overlap", "2024-01-02", "2024-01-06", "2024-01-04", "2024-01-09", true},
		{"contained", "2024-01-03", "2024-01-04", "2024-01-01", "2024-01-10", true},
		{"same range", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
		{"turnover: a ends where b starts", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-08", false},
		{"turnover: a starts where b ends", "2024-01-05", "2024-01-08", "2024-01-01", "2024-01-05", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(t, tt.aStart), day(t, tt.aEnd), day(t, tt.bStart), day(t, tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	bookings := []models.Guest{
		booking(1, []string{"101"}, "2024-01-10", "2024-01-12", constants.GuestStatusCheckedIn),
	}
	r101 := room("101", "DBL", constants.RoomStatusAvailable)

	tests := []struct {
		name       string
		room       models.Room
		guests     []models.Guest
		start, end string
		want       bool
	}{
		{"turnover day is free", r101, bookings, "2024-01-12", "2024-01-14", true},
		{"overlap blocks", r101, bookings, "2024-01-11", "2024-01-13", false},
		{"ends at arrival is free", r101, bookings, "2024-01-08", "2024-01-10", true},
		{"exact same range blocks", r101, bookings, "2024-01-10", "2024-01-12", false},
		{"other room unaffected", room("102", "DBL", constants.RoomStatusAvailable), bookings, "2024-01-10", "2024-01-12", true},
		{"no bookings at all", r101, nil, "2024-01-10", "2024-01-12", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRoomAvailable(tt.room, tt.guests, day(t, tt.start), day(t, tt.end))
			if got != tt.want {
				t.Errorf("IsRoomAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRoomAvailableMaintenance(t *testing.T) {
	r := room("201", "SGL", constants.RoomStatusMaintenance)
	if IsRoomAvailable(r, nil, day(t, "2024-01-01"), day(t, "2024-01-05")) {
		t.Error("maintenance room must never be offered, even with no bookings")
	}
}

func TestIsRoomAvailableOccupiedFlagIsAdvisory(t *testing.T) {
	// status cache says occupied, but no booking actually covers the range
	r := room("101", "DBL", constants.RoomStatusOccupied)
	bookings := []models.Guest{
		booking(1, []string{"101"}, "2024-01-01", "2024-01-05", constants.GuestStatusCheckedIn),
	}
	if !IsRoomAvailable(r, bookings, day(t, "2024-02-01"), day(t, "2024-02-05")) {
		t.Error("occupied status alone must not disqualify a room with no date conflict")
	}
}

func TestIsRoomAvailableStatusFiltering(t *testing.T) {
	r := room("101", "DBL", constants.RoomStatusAvailable)
	start, end := day(t, "2024-01-10"), day(t, "2024-01-14")

	cancelled := []models.Guest{
		booking(1, []string{"101"}, "2024-01-09", "2024-01-15", constants.GuestStatusCancelled),
	}
	if !IsRoomAvailable(r, cancelled, start, end) {
		t.Error("cancelled booking must not occupy the room")
	}

	checkedOut := []models.Guest{
		booking(2, []string{"101"}, "2024-01-09", "2024-01-15", constants.GuestStatusCheckedOut),
	}
	if !IsRoomAvailable(r, checkedOut, start, end) {
		t.Error("checked-out booking must not block forward availability")
	}

	reserved := []models.Guest{
		booking(3, []string{"101"}, "2024-01-09", "2024-01-15", constants.GuestStatusReserved),
	}
	if IsRoomAvailable(r, reserved, start, end) {
		t.Error("reserved booking must block the room")
	}
}

func TestIsRoomAvailableSkipsMalformedBookings(t *testing.T) {
	r := room("101", "DBL", constants.RoomStatusAvailable)
	bad := []models.Guest{
		booking(1, []string{"101"}, "not-a-date", "2024-01-15", constants.GuestStatusCheckedIn),
		booking(2, []string{"101"}, "2024-01-15", "2024-01-15", constants.GuestStatusCheckedIn), // zero nights
		booking(3, []string{"101"}, "2024-01-15", "2024-01-10", constants.GuestStatusCheckedIn), // negative stay
	}
	if !IsRoomAvailable(r, bad, day(t, "2024-01-10"), day(t, "2024-01-20")) {
		t.Error("malformed bookings must be ignored, not treated as conflicts")
	}
}

func TestIsRoomAvailableInvalidRange(t *testing.T) {
	r := room("101", "DBL", constants.RoomStatusAvailable)
	if IsRoomAvailable(r, nil, day(t, "2024-01-14"), day(t, "2024-01-10")) {
		t.Error("inverted range must not report the room as free")
	}
	if IsRoomAvailable(r, nil, day(t, "2024-01-10"), day(t, "2024-01-10")) {
		t.Error("empty range must not report the room as free")
	}
}

func TestAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		room("10", "DBL", constants.RoomStatusAvailable),
		room("2", "DBL", constants.RoomStatusAvailable),
		room("3", "SGL", constants.RoomStatusAvailable),
		room("4", "DBL", constants.RoomStatusMaintenance),
		room("5", "DBL", constants.RoomStatusAvailable),
	}
	guests := []models.Guest{
		booking(1, []string{"5"}, "2024-03-01", "2024-03-05", constants.GuestStatusReserved),
		booking(2, []string{"2"}, "2024-03-04", "2024-03-06", constants.GuestStatusCancelled),
	}
	start, end := day(t, "2024-03-02"), day(t, "2024-03-04")

	got := AvailableRooms(rooms, guests, start, end, "", nil)

	var numbers []string
	for _, r := range got {
		numbers = append(numbers, r.RoomNumber)
	}
	want := []string{"2", "3", "10"}
	if len(numbers) != len(want) {
		t.Fatalf("AvailableRooms() = %v, want %v", numbers, want)
	}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("AvailableRooms() order = %v, want numeric-aware %v", numbers, want)
		}
	}
}

func TestAvailableRoomsTypeFilter(t *testing.T) {
	rooms := []models.Room{
		room("1", "DBL", constants.RoomStatusAvailable),
		room("2", "SGL", constants.RoomStatusAvailable),
	}
	got := AvailableRooms(rooms, nil, day(t, "2024-03-01"), day(t, "2024-03-03"), "SGL", nil)
	if len(got) != 1 || got[0].RoomNumber != "2" {
		t.Errorf("type filter returned %v, want only room 2", got)
	}
}

// Chosen policy for start >= end: return an empty list, never an error or
// panic. The alternative (an explicit error return) was rejected to keep
// the engine total over malformed ranges; callers validate and surface
// the message themselves.
func TestAvailableRoomsInvalidRangeReturnsEmptyNotError(t *testing.T) {
	rooms := []models.Room{room("1", "DBL", constants.RoomStatusAvailable)}

	got := AvailableRooms(rooms, nil, day(t, "2024-03-05"), day(t, "2024-03-01"), "", nil)
	if got == nil || len(got) != 0 {
		t.Errorf("inverted range: got %v, want empty non-nil list", got)
	}

	got = AvailableRooms(rooms, nil, day(t, "2024-03-01"), day(t, "2024-03-01"), "", nil)
	if len(got) != 0 {
		t.Errorf("empty range: got %v, want empty list", got)
	}
}

// The batch occupied-set computation and the per-room check must never
// drift apart.
func TestAvailableRoomsMatchesPerRoomCheck(t *testing.T) {
	rooms := []models.Room{
		room("101", "DBL", constants.RoomStatusAvailable),
		room("102", "DBL", constants.RoomStatusOccupied),
		room("103", "SGL", constants.RoomStatusMaintenance),
		room("104", "TPL", constants.RoomStatusAvailable),
	}
	guests := []models.Guest{
		booking(1, []string{"101", "104"}, "2024-05-01", "2024-05-10", constants.GuestStatusCheckedIn),
		booking(2, []string{"102"}, "2024-05-08", "2024-05-12", constants.GuestStatusReserved),
		booking(3, []string{"104"}, "2024-05-12", "2024-05-14", constants.GuestStatusCancelled),
		booking(4, []string{"101"}, "bad-date", "2024-05-20", constants.GuestStatusCheckedIn),
	}

	ranges := [][2]string{
		{"2024-05-01", "2024-05-05"},
		{"2024-05-09", "2024-05-11"},
		{"2024-05-10", "2024-05-15"},
		{"2024-05-12", "2024-05-13"},
	}
	for _, rg := range ranges {
		start, end := day(t, rg[0]), day(t, rg[1])
		batch := AvailableRooms(rooms, guests, start, end, "", nil)
		inBatch := make(map[string]bool)
		for _, r := range batch {
			inBatch[r.RoomNumber] = true
		}
		for _, r := range rooms {
			if IsRoomAvailable(r, guests, start, end) != inBatch[r.RoomNumber] {
				t.Errorf("range %v: room %s batch/per-room mismatch", rg, r.RoomNumber)
			}
		}
	}
}

func TestCalendarOccupancy(t *testing.T) {
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-06-01", "2024-06-04", constants.GuestStatusCheckedIn),
		booking(2, []string{"102", "103"}, "2024-06-03", "2024-06-05", constants.GuestStatusReserved),
	}
	occ := CalendarOccupancy(guests, day(t, "2024-06-01"), day(t, "2024-06-05"))

	want := map[string]int{
		"2024-06-01": 1, // 101
		"2024-06-02": 1, // 101
		"2024-06-03": 3, // 101 + 102 + 103
		"2024-06-04": 2, // 102 + 103 (booking 1 departs on the 4th)
		"2024-06-05": 0, // nobody: departure day itself is not occupied
	}
	if len(occ) != len(want) {
		t.Fatalf("got %d days, want %d (window endpoints are inclusive)", len(occ), len(want))
	}
	for d, count := range want {
		if occ[d] != count {
			t.Errorf("occupancy[%s] = %d, want %d", d, occ[d], count)
		}
	}
}

func TestCalendarOccupancyUnionSemantics(t *testing.T) {
	// room 101 double-assigned by two overlapping bookings: a data error
	// that must not inflate the count
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-06-01", "2024-06-05", constants.GuestStatusCheckedIn),
		booking(2, []string{"101"}, "2024-06-02", "2024-06-06", constants.GuestStatusReserved),
	}
	occ := CalendarOccupancy(guests, day(t, "2024-06-02"), day(t, "2024-06-03"))
	for d, count := range occ {
		if count != 1 {
			t.Errorf("occupancy[%s] = %d, want 1 (union, no double counting)", d, count)
		}
	}
}

func TestCalendarOccupancyStatusFiltering(t *testing.T) {
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-06-01", "2024-06-03", constants.GuestStatusCheckedOut),
		booking(2, []string{"102"}, "2024-06-01", "2024-06-03", constants.GuestStatusCancelled),
	}
	occ := CalendarOccupancy(guests, day(t, "2024-06-01"), day(t, "2024-06-02"))
	// checked-out stays count for historical reporting; cancelled never do
	if occ["2024-06-01"] != 1 || occ["2024-06-02"] != 1 {
		t.Errorf("got %v, want 1 per day (checked_out counts, cancelled does not)", occ)
	}
}

func TestCalendarOccupancySkipsMalformedBookings(t *testing.T) {
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-06-01", "2024-06-03", constants.GuestStatusCheckedIn),
		booking(2, []string{"102"}, "06/02/2024", "2024-06-03", constants.GuestStatusCheckedIn),
		booking(3, []string{"103"}, "2024-06-02", "not-a-date", constants.GuestStatusCheckedIn),
		booking(4, []string{"104"}, "2024-06-02", "2024-06-02", constants.GuestStatusCheckedIn),
		booking(5, []string{"105"}, "2024-06-03", "2024-06-01", constants.GuestStatusCheckedIn),
	}
	occ := CalendarOccupancy(guests, day(t, "2024-06-01"), day(t, "2024-06-03"))
	// chỉ booking 1 hợp lệ; ngày hỏng, 0 đêm hay đảo ngược đều bị bỏ qua
	want := map[string]int{
		"2024-06-01": 1,
		"2024-06-02": 1,
		"2024-06-03": 0,
	}
	for d, count := range want {
		if occ[d] != count {
			t.Errorf("occupancy[%s] = %d, want %d (malformed bookings must contribute nothing)", d, occ[d], count)
		}
	}
}

func TestCalendarOccupancyDeterministicKeys(t *testing.T) {
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-06-01", "2024-06-02", constants.GuestStatusCheckedIn),
	}
	a := CalendarOccupancy(guests, day(t, "2024-06-01"), day(t, "2024-06-01"))
	b := CalendarOccupancy(guests, day(t, "2024-06-01"), day(t, "2024-06-01"))
	if len(a) != 1 || len(b) != 1 || a["2024-06-01"] != b["2024-06-01"] {
		t.Errorf("same inputs must yield the same map with YYYY-MM-DD keys, got %v and %v", a, b)
	}
}

func TestOccupancyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		occupancy  map[string]int
		totalRooms int
		want       int
	}{
		{"empty map", map[string]int{}, 10, 0},
		{"nil map", nil, 10, 0},
		{"zero inventory", map[string]int{"2024-01-01": 3}, 0, 0},
		{"full house", map[string]int{"2024-01-01": 4, "2024-01-02": 4}, 4, 100},
		{"rounding up", map[string]int{"2024-01-01": 1, "2024-01-02": 0}, 3, 17}, // 0.5/3 = 16.67
		{"overbooked stays visible", map[string]int{"2024-01-01": 6}, 4, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OccupancyPercentage(tt.occupancy, tt.totalRooms); got != tt.want {
				t.Errorf("OccupancyPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Two rooms total, one booking holding one room across the full 5-day
// window: average daily count 1, so 50%.
func TestOccupancyPercentageHalfInventory(t *testing.T) {
	guests := []models.Guest{
		booking(1, []string{"101"}, "2024-07-01", "2024-07-06", constants.GuestStatusCheckedIn),
	}
	occ := CalendarOccupancy(guests, day(t, "2024-07-01"), day(t, "2024-07-05"))
	if got := OccupancyPercentage(occ, 2); got != 50 {
		t.Errorf("OccupancyPercentage() = %d, want 50", got)
	}
}

func TestUpcomingBookings(t *testing.T) {
	now := time.Date(2024, 8, 10, 15, 30, 0, 0, time.UTC)
	guests := []models.Guest{
		booking(1, []string{"104"}, "2024-08-20", "2024-08-22", constants.GuestStatusReserved),
		booking(2, []string{"101"}, "2024-08-10", "2024-08-12", constants.GuestStatusReserved), // today: included
		booking(3, []string{"102"}, "2024-08-09", "2024-08-11", constants.GuestStatusReserved), // yesterday: out
		booking(4, []string{"103"}, "2024-09-09", "2024-09-12", constants.GuestStatusReserved), // today+30: included
		booking(5, []string{"105"}, "2024-09-10", "2024-09-12", constants.GuestStatusReserved), // today+31: out
		booking(6, []string{"106"}, "2024-08-15", "2024-08-18", constants.GuestStatusCancelled),
	}

	got := UpcomingBookings(guests, 30, now)
	var ids []uint
	for _, g := range got {
		ids = append(ids, g.ID)
	}
	want := []uint{2, 1, 4}
	if len(ids) != len(want) {
		t.Fatalf("UpcomingBookings() ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("UpcomingBookings() order = %v, want %v", ids, want)
		}
	}
}

func TestUpcomingBookingsStableTiebreak(t *testing.T) {
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	a := booking(1, []string{"101"}, "2024-08-05", "2024-08-07", constants.GuestStatusReserved)
	a.GRCNumber = "GRC-20240801-0002"
	b := booking(2, []string{"102"}, "2024-08-05", "2024-08-07", constants.GuestStatusReserved)
	b.GRCNumber = "GRC-20240801-0001"

	first := UpcomingBookings([]models.Guest{a, b}, 10, now)
	second := UpcomingBookings([]models.Guest{b, a}, 10, now)
	if len(first) != 2 || len(second) != 2 {
		t.Fatal("expected both bookings in range")
	}
	if first[0].ID != second[0].ID || first[0].ID != 2 {
		t.Errorf("tie on arrival must break by GRC number regardless of input order; got %d then %d", first[0].ID, second[0].ID)
	}
}

func TestRoomNumberLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2", "10", true},
		{"10", "2", false},
		{"101", "101", false},
		{"A10", "A2", true}, // lexicographic fallback for non-numeric
		{"B1", "A9", false},
	}
	for _, tt := range tests {
		if got := RoomNumberLess(tt.a, tt.b); got != tt.want {
			t.Errorf("RoomNumberLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
