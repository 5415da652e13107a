package availability

import (
	"testing"
	"time"
)

func TestParseDayFormatDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if d.Location() != time.UTC {
		t.Errorf("ParseDay() location = %v, want UTC", d.Location())
	}
	if got := FormatDay(d); got != "2024-02-29" {
		t.Errorf("FormatDay(ParseDay(x)) = %q, want %q", got, "2024-02-29")
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "30/12/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) accepted, want error", s)
		}
	}
}

func TestDayTruncates(t *testing.T) {
	late := time.Date(2024, 4, 10, 23, 59, 59, 0, time.UTC)
	if got := FormatDay(Day(late)); got != "2024-04-10" {
		t.Errorf("Day() = %s, want 2024-04-10", got)
	}
}

func TestNights(t *testing.T) {
	a, _ := ParseDay("2024-01-10")
	b, _ := ParseDay("2024-01-14")
	if got := Nights(a, b); got != 4 {
		t.Errorf("Nights() = %d, want 4", got)
	}
	if got := Nights(a, a); got != 0 {
		t.Errorf("Nights(same day) = %d, want 0", got)
	}
}
