package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// NightsBetween counts the nights between check-in and check-out,
// comparing calendar days rather than raw durations so a late check-in
// still counts the night.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := now.With(checkIn).BeginningOfDay()
	out := now.With(checkOut).BeginningOfDay()
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// GenerateReferenceCode produces a short printable booking reference.
func GenerateReferenceCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK-" + id[:12]
}

// RoundAmount rounds a monetary value to two decimal places.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
