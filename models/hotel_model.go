package models

import (
	"time"

	"github.com/google/uuid"
)

type Hotel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Address string    `gorm:"size:255;not null" json:"address"`
	City    string    `gorm:"size:100;not null" json:"city"`
	Contact string    `gorm:"size:50" json:"contact"`

	// One hotel per owner.
	OwnerID uuid.UUID `gorm:"not null;unique" json:"owner_id"`
	Owner   User      `gorm:"foreignkey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
