package repository

import (
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(m *models.Membership) error {
	return r.db.Create(m).Error
}

func (r *MembershipRepository) GetByID(id uint) (*models.Membership, error) {
	var m models.Membership
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepository) List(status string, limit, offset int) ([]models.Membership, error) {
	var list []models.Membership
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *MembershipRepository) Update(m *models.Membership) error {
	return r.db.Save(m).Error
}

func (r *MembershipRepository) Delete(id uint) error {
	return r.db.Delete(&models.Membership{}, id).Error
}

// CountByClientEmail reports how many memberships reference a client's
// email; shown to the operator before a client deletion so they know what
// history stays behind.
func (r *MembershipRepository) CountByClientEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).Where("client_email = ?", email).Count(&count).Error
	return count, err
}

// SyncClientFields pushes updated client contact data into every
// membership that references the old email.
func (r *MembershipRepository) SyncClientFields(oldEmail, name, phone, newEmail string) error {
	return r.db.Model(&models.Membership{}).
		Where("client_email = ?", oldEmail).
		Updates(map[string]interface{}{
			"client_name":  name,
			"client_phone": phone,
			"client_email": newEmail,
		}).Error
}
