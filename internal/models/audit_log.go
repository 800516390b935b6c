package models

import "time"

// AuditLog records operator actions against sensitive data (deletions,
// point adjustments, redemptions).
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OperatorID uint      `gorm:"index" json:"operator_id"`
	Action     string    `gorm:"size:64;not null;index" json:"action"`
	Detail     string    `gorm:"size:512" json:"detail"`
	IP         string    `gorm:"size:45" json:"ip"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
