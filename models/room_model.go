package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	HotelID       uuid.UUID `gorm:"not null" json:"hotel_id"`
	RoomType      string    `gorm:"size:100;not null" json:"room_type"`
	PricePerNight float64   `gorm:"type:numeric(10,2);not null" json:"price_per_night"`

	Hotel Hotel `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
