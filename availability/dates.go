package availability

import (
	"strconv"
	"time"
)

// DayLayout là định dạng ngày chuẩn của hệ thống
const DayLayout = "2006-01-02"

// ParseDay parse chuỗi ngày YYYY-MM-DD thành mốc 0h UTC của ngày đó.
// Mọi phép so sánh ngày trong engine đều đi qua đây để tránh lệch múi giờ.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// FormatDay format một mốc thời gian về dạng YYYY-MM-DD
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Day cắt phần giờ của một mốc thời gian, giữ lại ngày lịch tại múi giờ của nó
func Day(t time.Time) time.Time {
	day, _ := ParseDay(FormatDay(t))
	return day
}

// Nights đếm số đêm giữa hai mốc ngày (khoảng nửa mở)
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// RoomNumberLess so sánh số phòng theo kiểu số học: "2" đứng trước "10".
// Số phòng không thuần số thì so sánh chuỗi.
func RoomNumberLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
