package repository

import (
	"errors"
	"time"

	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type GuardRepository struct {
	db *gorm.DB
}

func NewGuardRepository(db *gorm.DB) *GuardRepository {
	return &GuardRepository{db: db}
}

// GetOrCreate returns the persisted state for one guarded action,
// creating a zeroed row on first use.
func (r *GuardRepository) GetOrCreate(action string) (*models.GuardState, error) {
	var s models.GuardState
	err := r.db.Where("action = ?", action).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	s = models.GuardState{Action: action}
	if err := r.db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GuardRepository) Save(s *models.GuardState) error {
	return r.db.Model(s).Updates(map[string]interface{}{
		"attempts":      s.Attempts,
		"blocked_until": s.BlockedUntil,
	}).Error
}

// ListExpired returns states whose block deadline has passed, for the
// janitor to reset.
func (r *GuardRepository) ListExpired(now time.Time) ([]models.GuardState, error) {
	var list []models.GuardState
	err := r.db.Where("blocked_until IS NOT NULL AND blocked_until <= ?", now).Find(&list).Error
	return list, err
}
