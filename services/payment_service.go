package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/anjiri1684/quick_stay/models"
	"github.com/anjiri1684/quick_stay/payments"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	db      *gorm.DB
	gateway payments.Gateway
}

func NewPaymentService(db *gorm.DB, gateway payments.Gateway) *PaymentService {
	return &PaymentService{db: db, gateway: gateway}
}

// CreateCheckoutSession builds a single-line-item checkout for the booking's
// total price and returns the gateway-hosted URL the client should redirect
// to. The booking id travels as session metadata so verification can recover
// it without re-deriving anything.
func (s *PaymentService) CreateCheckoutSession(bookingID uuid.UUID, origin string) (string, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBookingNotFound
		}
		return "", fmt.Errorf("loading booking: %w", err)
	}

	var room models.Room
	if err := s.db.Preload("Hotel").First(&room, "id = ?", booking.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRoomNotFound
		}
		return "", fmt.Errorf("loading room: %w", err)
	}

	session, err := s.gateway.CreateCheckoutSession(payments.CheckoutParams{
		AmountMinor: int64(math.Round(booking.TotalPrice * 100)),
		Currency:    "usd",
		ProductName: room.Hotel.Name,
		SuccessURL:  fmt.Sprintf("%s/loader/my-bookings?session_id={CHECKOUT_SESSION_ID}", origin),
		CancelURL:   fmt.Sprintf("%s/my-bookings", origin),
		Metadata:    map[string]string{"bookingId": booking.ID.String()},
	})
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}
	return session.URL, nil
}

// VerifyPayment reconciles a gateway session with its booking. Only a session
// the gateway reports as paid flips is_paid, and re-verifying an already-paid
// booking is a no-op that still reports verified. A gateway failure surfaces
// as an error, never as "not paid".
func (s *PaymentService) VerifyPayment(sessionID string) (bool, error) {
	session, err := s.gateway.RetrieveSession(sessionID)
	if err != nil {
		return false, fmt.Errorf("retrieving checkout session: %w", err)
	}

	if session.PaymentStatus != "paid" {
		return false, nil
	}

	bookingID, err := uuid.Parse(session.Metadata["bookingId"])
	if err != nil {
		return false, fmt.Errorf("session %s has no valid bookingId metadata: %w", sessionID, err)
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrBookingNotFound
		}
		return false, fmt.Errorf("loading booking: %w", err)
	}
	if booking.IsPaid {
		return true, nil
	}

	err = s.db.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"is_paid":        true,
			"payment_method": s.gateway.Name(),
		}).Error
	if err != nil {
		return false, fmt.Errorf("marking booking paid: %w", err)
	}
	return true, nil
}
