// Package availability là lõi tính toán tình trạng phòng: kiểm tra phòng
// trống, tính tỷ lệ lấp đầy theo lịch và phát hiện xung đột khi gia hạn
// lưu trú. Toàn bộ hàm đều thuần (pure): nhận snapshot []models.Room /
// []models.Guest, không truy cập DB, không đọc đồng hồ toàn cục.
//
// Caller làm theo trình tự fetch snapshot -> gọi engine -> ghi kết quả;
// engine không có bảo đảm giao dịch nào giữa các bước đó. Hai lễ tân thao
// tác đồng thời trên cùng khoảng ngày vẫn có thể đè nhau — tầng lưu trữ
// phải tự re-validate trước khi commit nếu cần chống race.
package availability

import (
	"sort"
	"time"

	"frontdesk/constants"
	"frontdesk/models"
)

// Overlaps kiểm tra hai khoảng nửa mở [aStart, aEnd) và [bStart, bEnd)
// có giao nhau không. Trả phòng và nhận phòng cùng ngày không tính là
// xung đột (aStart == bEnd hoặc aEnd == bStart).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// parseStay đọc khoảng lưu trú của một booking. Trả về ok=false với
// booking hỏng (ngày không parse được hoặc departure <= arrival) để các
// hàm tổng hợp bỏ qua thay vì sập cả dashboard vì một bản ghi xấu.
func parseStay(guest models.Guest) (start, end time.Time, ok bool) {
	start, err := ParseDay(guest.DateOfArrival)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = ParseDay(guest.DateOfDeparture)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// blocksForward cho biết một booking có chặn việc nhận phòng mới không.
// Booking đã hủy không bao giờ giữ phòng; booking đã check-out thì phòng
// coi như trống cho tương lai (nhưng vẫn tính vào thống kê lấp đầy).
func blocksForward(status string) bool {
	return status != constants.GuestStatusCancelled && status != constants.GuestStatusCheckedOut
}

func containsRoom(roomNumbers []string, roomNumber string) bool {
	for _, rn := range roomNumbers {
		if rn == roomNumber {
			return true
		}
	}
	return false
}

// IsRoomAvailable kiểm tra một phòng có trống trong khoảng [start, end).
// Phòng đang bảo trì luôn trả về false. Trạng thái "occupied" chỉ là cờ
// tham khảo — booking records mới là nguồn chân lý cho xung đột theo ngày.
// Khoảng ngày không hợp lệ (start >= end) trả về false.
func IsRoomAvailable(room models.Room, guests []models.Guest, start, end time.Time) bool {
	if room.Status == constants.RoomStatusMaintenance {
		return false
	}
	if !start.Before(end) {
		return false
	}

	for _, guest := range guests {
		if !blocksForward(guest.Status) {
			continue
		}
		if !containsRoom(guest.RoomNumbers, room.RoomNumber) {
			continue
		}
		bStart, bEnd, ok := parseStay(guest)
		if !ok {
			continue
		}
		if Overlaps(start, end, bStart, bEnd) {
			return false
		}
	}
	return true
}

// AvailableRooms trả danh sách phòng trống trong [start, end), lọc theo
// roomType nếu khác rỗng. Khoảng ngày không hợp lệ trả danh sách rỗng —
// engine không ném lỗi cho input xấu, caller tự hiển thị lỗi validate.
// Tập phòng bận được gom một lượt qua toàn bộ booking (union các
// RoomNumbers xung đột) thay vì gọi IsRoomAvailable từng phòng; hai cách
// cho cùng kết quả. Kết quả sắp xếp theo less, mặc định RoomNumberLess.
func AvailableRooms(rooms []models.Room, guests []models.Guest, start, end time.Time, roomType string, less func(a, b models.Room) bool) []models.Room {
	available := make([]models.Room, 0)
	if !start.Before(end) {
		return available
	}

	occupied := make(map[string]bool)
	for _, guest := range guests {
		if !blocksForward(guest.Status) || len(guest.RoomNumbers) == 0 {
			continue
		}
		bStart, bEnd, ok := parseStay(guest)
		if !ok {
			continue
		}
		if !Overlaps(start, end, bStart, bEnd) {
			continue
		}
		for _, rn := range guest.RoomNumbers {
			occupied[rn] = true
		}
	}

	for _, room := range rooms {
		if roomType != "" && room.RoomType != roomType {
			continue
		}
		if room.Status == constants.RoomStatusMaintenance {
			continue
		}
		if occupied[room.RoomNumber] {
			continue
		}
		available = append(available, room)
	}

	if less == nil {
		less = func(a, b models.Room) bool {
			return RoomNumberLess(a.RoomNumber, b.RoomNumber)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return less(available[i], available[j])
	})
	return available
}

// CalendarOccupancy đếm số phòng có khách cho từng ngày trong [start, end]
// (bao gồm cả hai đầu — đây là view báo cáo, khác với khoảng nửa mở của
// booking). Booking đã check-out vẫn tính (thống kê quá khứ), chỉ loại
// booking đã hủy. Một phòng bị hai booking chồng ngày giữ cùng lúc chỉ
// đếm một lần. Key của map là chuỗi YYYY-MM-DD.
func CalendarOccupancy(guests []models.Guest, start, end time.Time) map[string]int {
	occupancy := make(map[string]int)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		occupiedRooms := make(map[string]bool)
		for _, guest := range guests {
			if guest.Status == constants.GuestStatusCancelled {
				continue
			}
			bStart, bEnd, ok := parseStay(guest)
			if !ok {
				continue
			}
			if day.Before(bStart) || !day.Before(bEnd) {
				continue
			}
			for _, rn := range guest.RoomNumbers {
				occupiedRooms[rn] = true
			}
		}
		occupancy[FormatDay(day)] = len(occupiedRooms)
	}

	return occupancy
}

// OccupancyPercentage tính tỷ lệ lấp đầy trung bình (0-100, làm tròn) từ
// map CalendarOccupancy. Map rỗng hoặc totalRooms == 0 trả về 0. Giá trị
// trên 100 được trả nguyên vẹn — đó là dấu hiệu overbooking, clamp sẽ che
// mất lỗi dữ liệu.
func OccupancyPercentage(occupancy map[string]int, totalRooms int) int {
	if totalRooms == 0 || len(occupancy) == 0 {
		return 0
	}

	sum := 0
	for _, count := range occupancy {
		sum += count
	}
	avg := float64(sum) / float64(len(occupancy))
	ratio := avg / float64(totalRooms) * 100

	// làm tròn nửa lên, không dùng math.Round để giữ int suốt đường đi
	return int(ratio + 0.5)
}

// UpcomingBookings lọc các booking có ngày đến trong [hôm nay, hôm nay +
// daysFromNow] (bao gồm hai đầu), loại booking đã hủy. Tham số now là
// đồng hồ tiêm từ ngoài — "hôm nay" là ngày lịch của now, không đọc
// time.Now trực tiếp để còn test được. Kết quả sắp tăng dần theo ngày
// đến, trùng ngày thì theo số GRC cho ổn định.
func UpcomingBookings(guests []models.Guest, daysFromNow int, now time.Time) []models.Guest {
	today := Day(now)
	limit := today.AddDate(0, 0, daysFromNow)

	upcoming := make([]models.Guest, 0)
	for _, guest := range guests {
		if guest.Status == constants.GuestStatusCancelled {
			continue
		}
		arrival, err := ParseDay(guest.DateOfArrival)
		if err != nil {
			continue
		}
		if arrival.Before(today) || arrival.After(limit) {
			continue
		}
		upcoming = append(upcoming, guest)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].DateOfArrival != upcoming[j].DateOfArrival {
			return upcoming[i].DateOfArrival < upcoming[j].DateOfArrival
		}
		return upcoming[i].GRCNumber < upcoming[j].GRCNumber
	})
	return upcoming
}
