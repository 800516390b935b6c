package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a clinic customer. Points is a denormalized cache of the
// reward ledger: it must always equal the sum of earned minus redeemed
// entries for this client, and is only ever written through
// LedgerRepository.IncrementPoints.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string         `gorm:"size:10" json:"phone"`
	Points    int            `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}
