package handler

import (
	"net/http"
	"strconv"

	"dermasilk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuditHandler exposes the operator action trail (logins, deletions,
// point adjustments, redemptions), newest first.
type AuditHandler struct {
	auditRepo *repository.AuditLogRepository
}

func NewAuditHandler(auditRepo *repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.auditRepo.List(limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list audit logs failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": list})
}
