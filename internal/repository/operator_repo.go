package repository

import (
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type OperatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

func (r *OperatorRepository) GetByID(id uint) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.First(&op, id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) GetByEmail(email string) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.Where("email = ?", email).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) Update(op *models.Operator) error {
	return r.db.Save(op).Error
}
