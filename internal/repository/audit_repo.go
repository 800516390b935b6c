package repository

import (
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Log(operatorID uint, action, detail, ip string) error {
	return r.db.Create(&models.AuditLog{
		OperatorID: operatorID,
		Action:     action,
		Detail:     detail,
		IP:         ip,
	}).Error
}

func (r *AuditLogRepository) List(limit, offset int) ([]models.AuditLog, error) {
	var list []models.AuditLog
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
