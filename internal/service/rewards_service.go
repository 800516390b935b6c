package service

import (
	"errors"
	"fmt"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrRewardNotFound = errors.New("reward not found")
	ErrRewardInactive = errors.New("reward is not active")
)

// EligibleReward is an active catalog item annotated against a client's
// current balance. Affordable is advisory only; the atomic adjustment is
// the authority on whether a redemption goes through.
type EligibleReward struct {
	models.RewardItem
	Affordable bool `json:"affordable"`
}

// RewardsService runs the redemption workflow: pick a client and an
// active reward, then delegate the balance check and the ledger append to
// the atomic adjustment in one indivisible step.
type RewardsService struct {
	rewardRepo *repository.RewardRepository
	ledgerRepo *repository.LedgerRepository
}

func NewRewardsService(rewardRepo *repository.RewardRepository, ledgerRepo *repository.LedgerRepository) *RewardsService {
	return &RewardsService{rewardRepo: rewardRepo, ledgerRepo: ledgerRepo}
}

// Redeem spends points for a catalog reward. On any failure nothing has
// been written; callers re-read authoritative state rather than trusting
// local copies.
func (s *RewardsService) Redeem(clientID, rewardID uint, description *string) (int, *models.RewardItem, error) {
	reward, err := s.rewardRepo.GetByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrRewardNotFound
		}
		return 0, nil, err
	}
	if !reward.Active {
		return 0, nil, ErrRewardInactive
	}
	reason := fmt.Sprintf("Canje: %s", reward.Name)
	newBalance, err := s.ledgerRepo.IncrementPoints(clientID, reward.PointsRequired, domain.TxRedeemed, reason, description)
	if err != nil {
		return 0, nil, err
	}
	return newBalance, reward, nil
}

// ListEligible returns active catalog items for a client, marking which
// ones the current balance covers so the UI can disable the rest.
func (s *RewardsService) ListEligible(clientID uint) ([]EligibleReward, int, error) {
	balance, err := s.ledgerRepo.Balance(clientID)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.rewardRepo.List("", true)
	if err != nil {
		return nil, 0, err
	}
	out := make([]EligibleReward, len(items))
	for i, item := range items {
		out[i] = EligibleReward{RewardItem: item, Affordable: item.PointsRequired <= balance}
	}
	return out, balance, nil
}
