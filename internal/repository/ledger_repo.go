package repository

import (
	"errors"
	"strings"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInsufficientPoints = errors.New("insufficient points balance")
	ErrInvalidPoints      = errors.New("points must be a positive integer")
	ErrEmptyReason        = errors.New("reason is required")
	ErrInvalidTxType      = errors.New("transaction type must be earned or redeemed")
)

// LedgerRepository owns the points ledger and the only sanctioned write
// path to a client's balance. The ledger is append-only: this type has no
// update or delete methods on rewards_transactions by design of the table,
// and corrections are made by appending an offsetting entry.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// IncrementPoints atomically appends a ledger entry and moves the client's
// denormalized balance, returning the new balance. The balance update is a
// conditional in-database increment, never a read-then-write: for redeemed
// the WHERE clause refuses to take the balance below zero, so two
// conflicting redemptions can never both succeed.
func (r *LedgerRepository) IncrementPoints(clientID uint, points int, txType, reason string, description *string) (int, error) {
	if points <= 0 {
		return 0, ErrInvalidPoints
	}
	if strings.TrimSpace(reason) == "" {
		return 0, ErrEmptyReason
	}
	if !domain.ValidTransactionType(txType) {
		return 0, ErrInvalidTxType
	}

	delta := points
	if txType == domain.TxRedeemed {
		delta = -points
	}

	var newBalance int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.Client{}).Where("id = ?", clientID)
		if txType == domain.TxRedeemed {
			q = q.Where("points >= ?", points)
		}
		res := q.UpdateColumn("points", gorm.Expr("points + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the client does not exist or the balance cannot
			// cover the redemption; look once to tell them apart.
			var c models.Client
			if err := tx.First(&c, clientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrClientNotFound
				}
				return err
			}
			return ErrInsufficientPoints
		}

		entry := models.RewardTransaction{
			ClientID:        clientID,
			Points:          points,
			TransactionType: txType,
			Reason:          reason,
			Description:     description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		var c models.Client
		if err := tx.First(&c, clientID).Error; err != nil {
			return err
		}
		newBalance = c.Points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Balance returns the denormalized balance from the client row.
func (r *LedgerRepository) Balance(clientID uint) (int, error) {
	var c models.Client
	if err := r.db.First(&c, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrClientNotFound
		}
		return 0, err
	}
	return c.Points, nil
}

// ProjectedBalance folds the ledger: sum of earned minus sum of redeemed.
// It must agree with Balance at every point observable between operations.
func (r *LedgerRepository) ProjectedBalance(clientID uint) (int, error) {
	var balance int
	err := r.db.Model(&models.RewardTransaction{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(SUM(CASE WHEN transaction_type = ? THEN points ELSE -points END), 0)", domain.TxEarned).
		Scan(&balance).Error
	return balance, err
}

// ListByClient returns a client's ledger, newest first.
func (r *LedgerRepository) ListByClient(clientID uint, limit, offset int) ([]models.RewardTransaction, error) {
	var list []models.RewardTransaction
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// ListRecent returns the latest entries across all clients with the client
// row preloaded for display (name, email).
func (r *LedgerRepository) ListRecent(limit int) ([]models.RewardTransaction, error) {
	var list []models.RewardTransaction
	err := r.db.Preload("Client").Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

// CountByClient reports how many ledger entries a client has.
func (r *LedgerRepository) CountByClient(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RewardTransaction{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}
