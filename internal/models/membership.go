package models

import (
	"time"

	"gorm.io/gorm"
)

// Area is one treated body zone inside a membership plan.
type Area struct {
	Category string `json:"category"` // grandes | medianas | chicas
	Name     string `json:"name"`
}

// Membership carries denormalized client contact fields so membership
// history survives client deletion; the client row links by email.
type Membership struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ClientName        string         `gorm:"size:255;not null" json:"client_name"`
	ClientPhone       string         `gorm:"size:10;not null" json:"client_phone"`
	ClientEmail       *string        `gorm:"size:255;index" json:"client_email"`
	MembershipType    string         `gorm:"size:20;not null" json:"membership_type"` // individual | combo | personalizada
	PlanName          string         `gorm:"size:20;not null" json:"plan_name"`       // esencial | completa | platinum
	Areas             []Area         `gorm:"serializer:json" json:"areas"`
	MonthlyPayment    float64        `gorm:"not null" json:"monthly_payment"`
	InitialPayment    float64        `gorm:"not null" json:"initial_payment"`
	TotalSessions     int            `gorm:"not null" json:"total_sessions"`
	CompletedSessions int            `gorm:"not null;default:0" json:"completed_sessions"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           *time.Time     `json:"end_date"`
	Status            string         `gorm:"size:20;not null;index;default:'activa'" json:"status"`
	Notes             *string        `gorm:"size:1024" json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}
