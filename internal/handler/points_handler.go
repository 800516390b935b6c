package handler

import (
	"net/http"
	"strconv"

	"dermasilk/internal/middleware"
	"dermasilk/internal/repository"
	"dermasilk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PointsHandler exposes the points ledger: manual adjustments,
// redemptions, balances and transaction history. Every balance mutation
// funnels through LedgerRepository.IncrementPoints.
type PointsHandler struct {
	ledgerRepo *repository.LedgerRepository
	rewardsSvc *service.RewardsService
	auditRepo  *repository.AuditLogRepository
	notifier   ChangeNotifier
}

func NewPointsHandler(ledgerRepo *repository.LedgerRepository, rewardsSvc *service.RewardsService, auditRepo *repository.AuditLogRepository, notifier ChangeNotifier) *PointsHandler {
	return &PointsHandler{ledgerRepo: ledgerRepo, rewardsSvc: rewardsSvc, auditRepo: auditRepo, notifier: notifier}
}

type AdjustRequest struct {
	ClientID        uint    `json:"client_id" binding:"required"`
	Points          int     `json:"points" binding:"required"`
	TransactionType string  `json:"transaction_type" binding:"required,oneof=earned redeemed"`
	Reason          string  `json:"reason" binding:"required"`
	Description     *string `json:"description"`
}

// Adjust is the operator-initiated earned/redeemed transaction. The
// repository re-validates everything; the binding tags just give nicer
// messages for the common cases.
func (h *PointsHandler) Adjust(c *gin.Context) {
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	newBalance, err := h.ledgerRepo.IncrementPoints(req.ClientID, req.Points, req.TransactionType, req.Reason, req.Description)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	_ = h.auditRepo.Log(middleware.GetOperatorID(c), "points_adjusted", req.Reason, c.ClientIP())
	h.notifier.EntityChanged("transactions", "created", req.ClientID)
	h.notifier.EntityChanged("clients", "updated", req.ClientID)
	c.JSON(http.StatusOK, gin.H{"new_balance": newBalance})
}

type RedeemRequest struct {
	ClientID    uint    `json:"client_id" binding:"required"`
	RewardID    uint    `json:"reward_id" binding:"required"`
	Description *string `json:"description"`
}

func (h *PointsHandler) Redeem(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	newBalance, reward, err := h.rewardsSvc.Redeem(req.ClientID, req.RewardID, req.Description)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	_ = h.auditRepo.Log(middleware.GetOperatorID(c), "reward_redeemed", reward.Name, c.ClientIP())
	h.notifier.EntityChanged("transactions", "created", req.ClientID)
	h.notifier.EntityChanged("clients", "updated", req.ClientID)
	c.JSON(http.StatusOK, gin.H{
		"new_balance":  newBalance,
		"reward":       reward,
		"points_spent": reward.PointsRequired,
	})
}

// Balance returns both the denormalized balance and the ledger fold; the
// console shows the first and can alert on disagreement.
func (h *PointsHandler) Balance(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	balance, err := h.ledgerRepo.Balance(uint(id))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	projected, err := h.ledgerRepo.ProjectedBalance(uint(id))
	if err != nil {
		log.Error().Err(err).Msg("projected balance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": balance, "projected": projected})
}

func (h *PointsHandler) ClientTransactions(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.ledgerRepo.ListByClient(uint(id), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list client transactions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

// RecentTransactions backs the console's ledger tab: latest entries
// across all clients with client name/email attached.
func (h *PointsHandler) RecentTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := h.ledgerRepo.ListRecent(limit)
	if err != nil {
		log.Error().Err(err).Msg("list transactions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

// Eligible lists active rewards for a client with affordability flags.
// Advisory only: the atomic adjustment still guards the actual redemption.
func (h *PointsHandler) Eligible(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	rewards, balance, err := h.rewardsSvc.ListEligible(uint(id))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards, "points": balance})
}
