package repository

import (
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(c *models.Client) error {
	return r.db.Create(c).Error
}

func (r *ClientRepository) GetByID(id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) GetByEmail(email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns clients ordered by name, optionally filtered by a search
// term over name, email and phone.
func (r *ClientRepository) List(search string, limit, offset int) ([]models.Client, error) {
	var list []models.Client
	q := r.db.Order("name ASC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// Update writes the client's contact fields. Points is deliberately not
// included: balances move only through LedgerRepository.IncrementPoints.
func (r *ClientRepository) Update(c *models.Client) error {
	return r.db.Model(c).Updates(map[string]interface{}{
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
	}).Error
}

// Delete removes the client row only. Memberships and ledger entries are
// never cascaded; membership history outlives the client record.
func (r *ClientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Client{}, id).Error
}

func (r *ClientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, err
}
