package repository

import (
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(item *models.RewardItem) error {
	return r.db.Create(item).Error
}

func (r *RewardRepository) GetByID(id uint) (*models.RewardItem, error) {
	var item models.RewardItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns catalog items cheapest first, optionally filtered by
// category and/or active flag.
func (r *RewardRepository) List(category string, activeOnly bool) ([]models.RewardItem, error) {
	var list []models.RewardItem
	q := r.db.Order("points_required ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *RewardRepository) Update(item *models.RewardItem) error {
	return r.db.Model(item).Updates(map[string]interface{}{
		"name":            item.Name,
		"description":     item.Description,
		"points_required": item.PointsRequired,
		"category":        item.Category,
		"active":          item.Active,
	}).Error
}

// SetActive toggles redemption eligibility without touching history.
func (r *RewardRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.RewardItem{}).Where("id = ?", id).Update("active", active).Error
}

// Delete removes a catalog item. Past redemption entries keep their
// recorded reason text and are unaffected.
func (r *RewardRepository) Delete(id uint) error {
	return r.db.Delete(&models.RewardItem{}, id).Error
}
