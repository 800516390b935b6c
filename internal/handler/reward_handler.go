package handler

import (
	"net/http"
	"strconv"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RewardHandler is the catalog CRUD. Catalog edits never touch the
// ledger; past redemptions keep their recorded reason text.
type RewardHandler struct {
	rewardRepo *repository.RewardRepository
	notifier   ChangeNotifier
}

func NewRewardHandler(rewardRepo *repository.RewardRepository, notifier ChangeNotifier) *RewardHandler {
	return &RewardHandler{rewardRepo: rewardRepo, notifier: notifier}
}

type RewardRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	PointsRequired int     `json:"points_required" binding:"required,gt=0"`
	Category       string  `json:"category" binding:"required"`
	Active         *bool   `json:"active"`
}

func (h *RewardHandler) List(c *gin.Context) {
	category := c.Query("category")
	activeOnly := c.Query("active") == "true"
	list, err := h.rewardRepo.List(category, activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("list rewards failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": list})
}

func (h *RewardHandler) Create(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidRewardCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"category": "Categoría inválida"}})
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	item := &models.RewardItem{
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Category:       req.Category,
		Active:         active,
	}
	if err := h.rewardRepo.Create(item); err != nil {
		log.Error().Err(err).Msg("create reward failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("rewards", "created", item.ID)
	c.JSON(http.StatusCreated, gin.H{"reward": item})
}

func (h *RewardHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	item, err := h.rewardRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "reward")
		return
	}
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidRewardCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"category": "Categoría inválida"}})
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.PointsRequired = req.PointsRequired
	item.Category = req.Category
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := h.rewardRepo.Update(item); err != nil {
		log.Error().Err(err).Uint("reward_id", item.ID).Msg("update reward failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("rewards", "updated", item.ID)
	c.JSON(http.StatusOK, gin.H{"reward": item})
}

// ToggleActive flips redemption eligibility without deleting history.
func (h *RewardHandler) ToggleActive(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	item, err := h.rewardRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "reward")
		return
	}
	if err := h.rewardRepo.SetActive(item.ID, !item.Active); err != nil {
		log.Error().Err(err).Uint("reward_id", item.ID).Msg("toggle reward failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	item.Active = !item.Active
	h.notifier.EntityChanged("rewards", "updated", item.ID)
	c.JSON(http.StatusOK, gin.H{"reward": item})
}

func (h *RewardHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.rewardRepo.GetByID(uint(id)); err != nil {
		notFoundOr500(c, err, "reward")
		return
	}
	if err := h.rewardRepo.Delete(uint(id)); err != nil {
		log.Error().Err(err).Uint64("reward_id", id).Msg("delete reward failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("rewards", "deleted", uint(id))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
