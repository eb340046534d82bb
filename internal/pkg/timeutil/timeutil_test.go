package timeutil

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{2.5, "2h 30m"},
		{0, "0h 0m"},
		{0.25, "0h 15m"},
		{8, "8h 0m"},
		{7.999, "8h 0m"},
	}
	for _, c := range cases {
		got := FormatDuration(c.hours)
		if got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(25200); got != "7h 0m" {
		t.Errorf("FormatSeconds(25200) = %q, want %q", got, "7h 0m")
	}
	if got := FormatSeconds(5400); got != "1h 30m" {
		t.Errorf("FormatSeconds(5400) = %q, want %q", got, "1h 30m")
	}
}

func TestTimeStringToDecimalHours(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"02:30:00", 2.5, true},
		{"02:30", 2.5, true},
		{"00:00:00", 0, true},
		{"10:15", 10.25, true},
		{"2:60", 0, false},
		{"banana", 0, false},
		{"", 0, false},
		{"1:2:3:4", 0, false},
	}
	for _, c := range cases {
		got, err := TimeStringToDecimalHours(c.input)
		if c.ok && err != nil {
			t.Errorf("TimeStringToDecimalHours(%q) error: %v", c.input, err)
			continue
		}
		if !c.ok && err == nil {
			t.Errorf("TimeStringToDecimalHours(%q) expected error", c.input)
			continue
		}
		if got != c.want {
			t.Errorf("TimeStringToDecimalHours(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	if len(slots) != 25 {
		t.Fatalf("len = %d, want 25", len(slots))
	}
	if slots[0] != "00:00" {
		t.Errorf("first = %q, want 00:00", slots[0])
	}
	if slots[24] != "00:00" {
		t.Errorf("last = %q, want 00:00 (wrapped)", slots[24])
	}
	if slots[12] != "12:00" {
		t.Errorf("midday = %q, want 12:00", slots[12])
	}
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	workDate := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	start, end := DayBounds(workDate, loc)

	// Jakarta is UTC+7, so the local day starts at 17:00 UTC the day before.
	wantStart := time.Date(2026, time.March, 8, 17, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want %v", end, wantStart.AddDate(0, 0, 1))
	}
}
