package models

import (
	"time"
)

// GuardState persists PIN attempt counting for one guarded destructive
// action, so a lockout survives process restarts.
type GuardState struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Action       string     `gorm:"uniqueIndex;size:64;not null" json:"action"`
	Attempts     int        `gorm:"not null;default:0" json:"attempts"`
	BlockedUntil *time.Time `json:"blocked_until"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (GuardState) TableName() string {
	return "guard_states"
}
