package models

import (
	"time"
)

// RewardTransaction is one immutable entry in the points ledger. Rows are
// only created inside the atomic adjustment operation and are never updated
// or deleted; corrections append an offsetting entry.
type RewardTransaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClientID        uint      `gorm:"not null;index" json:"client_id"`
	Points          int       `gorm:"not null" json:"points"` // always positive; direction comes from TransactionType
	TransactionType string    `gorm:"size:10;not null;index" json:"transaction_type"` // earned | redeemed
	Reason          string    `gorm:"size:255;not null" json:"reason"`
	Description     *string   `gorm:"size:512" json:"description"`
	CreatedAt       time.Time `json:"created_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (RewardTransaction) TableName() string {
	return "rewards_transactions"
}
