package services

import (
	"errors"
	"fmt"

	"github.com/anjiri1684/quick_stay/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService struct {
	db       *gorm.DB
	bookings *BookingService
}

func NewDashboardService(db *gorm.DB, bookings *BookingService) *DashboardService {
	return &DashboardService{db: db, bookings: bookings}
}

type DashboardData struct {
	TotalBookings int64            `json:"total_bookings"`
	TotalRevenue  float64          `json:"total_revenue"`
	Bookings      []models.Booking `json:"bookings"`
}

// Summarize aggregates all bookings for the hotel owned by ownerID. Revenue
// is booked revenue: paid and unpaid bookings count alike.
func (s *DashboardService) Summarize(ownerID uuid.UUID) (*DashboardData, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHotel
		}
		return nil, fmt.Errorf("loading hotel: %w", err)
	}

	bookings, err := s.bookings.GetHotelBookings(hotel.ID)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		TotalBookings: int64(len(bookings)),
		Bookings:      bookings,
	}
	for _, booking := range bookings {
		data.TotalRevenue += booking.TotalPrice
	}
	return data, nil
}
