package services

import (
	"math"
	"time"
)

// Nights counts the billable nights between check-in and check-out,
// rounding any sub-day residue up to a whole night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func TotalPrice(pricePerNight float64, checkIn, checkOut time.Time) (float64, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, newValidationError("check-in date must be before check-out date")
	}
	return pricePerNight * float64(nights), nil
}
