package models

import (
	"time"

	"gorm.io/gorm"
)

// Operator is a console login. There is no self-service signup; accounts
// are seeded at startup or created by another operator.
type Operator struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Name         string         `gorm:"size:255" json:"name"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Operator) TableName() string {
	return "operators"
}
