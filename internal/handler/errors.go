package handler

import (
	"errors"
	"net/http"

	"dermasilk/internal/repository"
	"dermasilk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// writeLedgerError maps point-adjustment failures onto the console's
// error taxonomy: validation problems are 400, an unaffordable redemption
// is 422 and leaves state untouched, a vanished client or reward is a
// retryable 404, anything else is a transient service failure.
func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidPoints),
		errors.Is(err, repository.ErrEmptyReason),
		errors.Is(err, repository.ErrInvalidTxType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientPoints):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrClientNotFound),
		errors.Is(err, service.ErrRewardNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRewardInactive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("ledger operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
	}
}

// notFoundOr500 is the common read-path split: record missing vs. store
// failure.
func notFoundOr500(c *gin.Context, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	log.Error().Err(err).Msg(what + " lookup failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
}
