package models

import (
	"time"

	"gorm.io/gorm"
)

// RewardItem is a catalog entry clients can redeem points for. Deactivating
// or deleting an item never touches past redemption entries; the ledger
// keeps its own copy of the reason text.
type RewardItem struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Description    *string        `gorm:"size:512" json:"description"`
	PointsRequired int            `gorm:"not null" json:"points_required"`
	Category       string         `gorm:"size:30;not null;index" json:"category"` // descuentos | servicios | productos | vip
	// No default tag: gorm would skip a zero-valued Active on insert and
	// the row would come back active. The handler supplies the default.
	Active         bool           `gorm:"not null" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RewardItem) TableName() string {
	return "rewards_catalog"
}
