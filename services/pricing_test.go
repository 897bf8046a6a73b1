package services

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func TestNightsWholeDays(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		want     int
	}{
		{"2024-06-01", "2024-06-02", 1},
		{"2024-06-01", "2024-06-03", 2},
		{"2024-06-01", "2024-06-08", 7},
		{"2024-06-01", "2024-06-01", 0},
		{"2024-06-03", "2024-06-01", -2},
	}
	for _, tc := range cases {
		got := Nights(date(t, tc.checkIn), date(t, tc.checkOut))
		if got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
		}
	}
}

func TestTotalPriceSingleNight(t *testing.T) {
	total, err := TotalPrice(100, date(t, "2024-06-01"), date(t, "2024-06-02"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 100 {
		t.Fatalf("one night at 100 should cost 100, got %v", total)
	}
}

func TestTotalPriceMonotonic(t *testing.T) {
	checkIn := date(t, "2024-06-01")
	previous := 0.0
	for days := 1; days <= 14; days++ {
		total, err := TotalPrice(99.5, checkIn, checkIn.AddDate(0, 0, days))
		if err != nil {
			t.Fatalf("expected no error for %d days, got %v", days, err)
		}
		if total <= previous {
			t.Fatalf("total for %d nights (%v) not greater than for %d (%v)", days, total, days-1, previous)
		}
		previous = total
	}
}

func TestTotalPriceRejectsEmptyRange(t *testing.T) {
	for _, out := range []string{"2024-06-01", "2024-05-30"} {
		_, err := TotalPrice(100, date(t, "2024-06-01"), date(t, out))
		if err == nil {
			t.Fatalf("expected validation error for check-out %s", out)
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
	}
}
