package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "two nights",
			checkIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "late check-in still counts the night",
			checkIn:  time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "reversed dates clamp to zero",
			checkIn:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NightsBetween(tc.checkIn, tc.checkOut); got != tc.want {
				t.Errorf("NightsBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 10 {
		t.Errorf("parsed = %v", d)
	}
	if _, err := ParseDate("10/03/2026"); err == nil {
		t.Errorf("expected error for wrong layout")
	}
}

func TestGenerateReferenceCode(t *testing.T) {
	code := GenerateReferenceCode()
	if !strings.HasPrefix(code, "BK-") {
		t.Errorf("code = %q, want BK- prefix", code)
	}
	if len(code) != len("BK-")+12 {
		t.Errorf("code length = %d, want %d", len(code), len("BK-")+12)
	}
	if code == GenerateReferenceCode() {
		t.Errorf("two generated codes collided")
	}
}

func TestRoundAmount(t *testing.T) {
	if got := RoundAmount(10.006); got != 10.01 {
		t.Errorf("RoundAmount(10.006) = %v, want 10.01", got)
	}
	if got := RoundAmount(10.004); got != 10.0 {
		t.Errorf("RoundAmount(10.004) = %v, want 10", got)
	}
}
