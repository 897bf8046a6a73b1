package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/quick_stay/models"
	"github.com/anjiri1684/quick_stay/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingService struct {
	db       *gorm.DB
	notifier notifications.Sender
}

func NewBookingService(db *gorm.DB, notifier notifications.Sender) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

// IsAvailable reports whether the room has no booking overlapping the given
// range. Unpaid bookings hold their dates just like paid ones. This is an
// advisory check; CreateBooking re-runs it under a room lock before inserting.
func (s *BookingService) IsAvailable(roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, newValidationError("check-in date must be before check-out date")
	}
	count, err := countOverlapping(s.db, roomID, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("checking availability: %w", err)
	}
	return count == 0, nil
}

func countOverlapping(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND check_in_date < ? AND check_out_date > ?", roomID, checkOut, checkIn).
		Count(&count).Error
	return count, err
}

// CreateBooking admits a booking for the room if its dates are still free.
// The room row is locked for the duration of the transaction so that two
// concurrent requests for overlapping dates serialize: the first insert wins
// and the second sees the overlap and gets ErrRoomUnavailable.
func (s *BookingService) CreateBooking(userID, roomID uuid.UUID, checkIn, checkOut time.Time, guests int) (*models.Booking, error) {
	if !checkIn.Before(checkOut) {
		return nil, newValidationError("check-in date must be before check-out date")
	}
	if guests <= 0 {
		return nil, newValidationError("guests must be a positive number")
	}

	var booking models.Booking
	var user models.User
	var hotel models.Hotel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("loading room: %w", err)
		}

		count, err := countOverlapping(tx, roomID, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("checking availability: %w", err)
		}
		if count > 0 {
			return ErrRoomUnavailable
		}

		if err := tx.First(&hotel, "id = ?", room.HotelID).Error; err != nil {
			return fmt.Errorf("loading hotel: %w", err)
		}
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("loading user: %w", err)
		}

		totalPrice, err := TotalPrice(room.PricePerNight, checkIn, checkOut)
		if err != nil {
			return err
		}

		booking = models.Booking{
			UserID:        userID,
			RoomID:        roomID,
			HotelID:       hotel.ID,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			Guests:        guests,
			TotalPrice:    totalPrice,
			PaymentMethod: "none",
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("creating booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Confirmation email is best effort and must never fail the booking.
	go func() {
		subject := "Hotel Booking Details"
		if err := s.notifier.Send(user.FullName, user.Email, subject, bookingConfirmationHTML(&booking, &hotel, user.FullName)); err != nil {
			log.Printf("🔥 Failed to send booking confirmation for %s: %v", booking.ID, err)
		}
	}()

	return &booking, nil
}

func bookingConfirmationHTML(booking *models.Booking, hotel *models.Hotel, userName string) string {
	return fmt.Sprintf(
		`<h2>Your Booking Details</h2>
		<p>Dear %s,</p>
		<p>Thank you for your booking! Here are your details:</p>
		<ul>
			<li><strong>Booking Id:</strong> %s</li>
			<li><strong>Hotel Name:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Check-In:</strong> %s</li>
			<li><strong>Booking Amount:</strong> $ %.2f</li>
		</ul>
		<p>We look forward to welcoming you!</p>`,
		userName, booking.ID, hotel.Name, hotel.Address,
		booking.CheckInDate.Format("Mon, 02 Jan 2006"), booking.TotalPrice,
	)
}

func (s *BookingService) GetUserBookings(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("fetching user bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetHotelBookings(hotelID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Room").
		Preload("User").
		Where("hotel_id = ?", hotelID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("fetching hotel bookings: %w", err)
	}
	return bookings, nil
}
