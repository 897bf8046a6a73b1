package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"not null" json:"user_id"`
	RoomID  uuid.UUID `gorm:"not null" json:"room_id"`
	HotelID uuid.UUID `gorm:"not null" json:"hotel_id"`

	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	Guests       int       `gorm:"not null" json:"guests"`

	// Computed once at creation, never recalculated.
	TotalPrice    float64 `gorm:"type:numeric(10,2);not null" json:"total_price"`
	IsPaid        bool    `gorm:"not null;default:false" json:"is_paid"`
	PaymentMethod string  `gorm:"size:20;not null;default:'none'" json:"payment_method"`

	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Room  Room  `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	Hotel Hotel `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
