package handler

import (
	"net/http"
	"strconv"
	"time"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"
	"dermasilk/internal/service"
	"dermasilk/internal/validate"
	"dermasilk/pkg/pricing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MembershipHandler struct {
	svc            *service.MembershipService
	membershipRepo *repository.MembershipRepository
	notifier       ChangeNotifier
}

func NewMembershipHandler(svc *service.MembershipService, membershipRepo *repository.MembershipRepository, notifier ChangeNotifier) *MembershipHandler {
	return &MembershipHandler{svc: svc, membershipRepo: membershipRepo, notifier: notifier}
}

type MembershipRequest struct {
	ClientName     string        `json:"client_name"`
	ClientPhone    string        `json:"client_phone"`
	ClientEmail    *string       `json:"client_email"`
	MembershipType string        `json:"membership_type"`
	PlanName       string        `json:"plan_name"`
	Areas          []models.Area `json:"areas"`
	MonthlyPayment float64       `json:"monthly_payment"`
	InitialPayment float64       `json:"initial_payment"`
	TotalSessions  int           `json:"total_sessions"`
	StartDate      string        `json:"start_date"` // ISO date
	Status         string        `json:"status"`
	Notes          *string       `json:"notes"`
}

func validateMembership(req *MembershipRequest) map[string]string {
	fieldErrs := map[string]string{}
	if msg := validate.Name(validate.NormalizeName(req.ClientName)); msg != "" {
		fieldErrs["client_name"] = msg
	}
	if msg := validate.Phone(req.ClientPhone); msg != "" {
		fieldErrs["client_phone"] = msg
	}
	if req.ClientEmail != nil && *req.ClientEmail != "" {
		if msg := validate.Email(validate.NormalizeEmail(*req.ClientEmail)); msg != "" {
			fieldErrs["client_email"] = msg
		}
	}
	if !domain.ValidMembershipType(req.MembershipType) {
		fieldErrs["membership_type"] = "Tipo de membresía inválido"
	}
	if !domain.ValidPlan(req.PlanName) {
		fieldErrs["plan_name"] = "Plan inválido"
	}
	for _, a := range req.Areas {
		if !domain.ValidAreaCategory(a.Category) {
			fieldErrs["areas"] = "Categoría de área inválida"
			break
		}
	}
	return fieldErrs
}

func (h *MembershipHandler) List(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.membershipRepo.List(status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list memberships failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"memberships": list})
}

func (h *MembershipHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	m, err := h.membershipRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "membership")
		return
	}
	c.JSON(http.StatusOK, gin.H{"membership": m})
}

func (h *MembershipHandler) Create(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := validateMembership(&req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	start := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"start_date": "Fecha inválida (usa YYYY-MM-DD)"}})
			return
		}
		start = parsed
	}
	m := &models.Membership{
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		MembershipType: req.MembershipType,
		PlanName:       req.PlanName,
		Areas:          req.Areas,
		MonthlyPayment: req.MonthlyPayment,
		InitialPayment: req.InitialPayment,
		TotalSessions:  req.TotalSessions,
		StartDate:      start,
		Status:         domain.StatusActiva,
		Notes:          req.Notes,
	}
	if err := h.svc.Create(m); err != nil {
		log.Error().Err(err).Msg("create membership failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("memberships", "created", m.ID)
	c.JSON(http.StatusCreated, gin.H{"membership": m})
}

func (h *MembershipHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	m, err := h.membershipRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "membership")
		return
	}
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := validateMembership(&req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	if req.Status != "" && !domain.ValidMembershipStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"status": "Estado inválido"}})
		return
	}
	m.ClientName = req.ClientName
	m.ClientPhone = req.ClientPhone
	m.ClientEmail = req.ClientEmail
	m.MembershipType = req.MembershipType
	m.PlanName = req.PlanName
	m.Areas = req.Areas
	m.MonthlyPayment = req.MonthlyPayment
	m.InitialPayment = req.InitialPayment
	m.TotalSessions = req.TotalSessions
	m.Notes = req.Notes
	if req.Status != "" {
		m.Status = req.Status
	}
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"start_date": "Fecha inválida (usa YYYY-MM-DD)"}})
			return
		}
		m.StartDate = parsed
	}
	if err := h.svc.Update(m); err != nil {
		log.Error().Err(err).Uint("membership_id", m.ID).Msg("update membership failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("memberships", "updated", m.ID)
	c.JSON(http.StatusOK, gin.H{"membership": m})
}

func (h *MembershipHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.membershipRepo.GetByID(uint(id)); err != nil {
		notFoundOr500(c, err, "membership")
		return
	}
	if err := h.membershipRepo.Delete(uint(id)); err != nil {
		log.Error().Err(err).Uint64("membership_id", id).Msg("delete membership failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("memberships", "deleted", uint(id))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CompleteSession marks one session as done.
func (h *MembershipHandler) CompleteSession(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	m, err := h.svc.CompleteSession(uint(id))
	if err != nil {
		notFoundOr500(c, err, "membership")
		return
	}
	h.notifier.EntityChanged("memberships", "updated", m.ID)
	c.JSON(http.StatusOK, gin.H{"membership": m})
}

type QuoteRequest struct {
	Areas    []models.Area `json:"areas" binding:"required"`
	PlanName string        `json:"plan_name" binding:"required"`
}

// Quote returns the list-price monthly payment and plan sessions for a
// set of areas.
func (h *MembershipHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := pricing.QuoteFor(req.Areas, req.PlanName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}
