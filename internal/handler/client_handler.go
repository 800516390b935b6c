package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dermasilk/internal/guard"
	"dermasilk/internal/middleware"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"
	"dermasilk/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ClientHandler struct {
	clientRepo     *repository.ClientRepository
	membershipRepo *repository.MembershipRepository
	ledgerRepo     *repository.LedgerRepository
	deleteGuard    *guard.Guard
	guardAction    string
	auditRepo      *repository.AuditLogRepository
	notifier       ChangeNotifier
}

func NewClientHandler(clientRepo *repository.ClientRepository, membershipRepo *repository.MembershipRepository, ledgerRepo *repository.LedgerRepository, deleteGuard *guard.Guard, guardAction string, auditRepo *repository.AuditLogRepository, notifier ChangeNotifier) *ClientHandler {
	return &ClientHandler{
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		ledgerRepo:     ledgerRepo,
		deleteGuard:    deleteGuard,
		guardAction:    guardAction,
		auditRepo:      auditRepo,
		notifier:       notifier,
	}
}

type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// validateClient returns per-field messages; an error on one field never
// hides problems on another.
func validateClient(req *ClientRequest) map[string]string {
	req.Name = validate.NormalizeName(req.Name)
	req.Email = validate.NormalizeEmail(req.Email)
	fieldErrs := map[string]string{}
	if msg := validate.Name(req.Name); msg != "" {
		fieldErrs["name"] = msg
	}
	if msg := validate.Email(req.Email); msg != "" {
		fieldErrs["email"] = msg
	}
	if msg := validate.Phone(req.Phone); msg != "" {
		fieldErrs["phone"] = msg
	}
	return fieldErrs
}

func (h *ClientHandler) List(c *gin.Context) {
	search := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.clientRepo.List(search, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list clients failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": list})
}

// Stats backs the console's dashboard cards.
func (h *ClientHandler) Stats(c *gin.Context) {
	total, err := h.clientRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("client stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_clients": total})
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	client, err := h.clientRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "client")
		return
	}
	membershipCount := int64(0)
	if client.Email != "" {
		membershipCount, _ = h.membershipRepo.CountByClientEmail(client.Email)
	}
	txCount, _ := h.ledgerRepo.CountByClient(client.ID)
	c.JSON(http.StatusOK, gin.H{
		"client":            client,
		"membership_count":  membershipCount,
		"transaction_count": txCount,
	})
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := validateClient(&req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	client := &models.Client{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.clientRepo.Create(client); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "Ya existe un cliente con este email"}})
			return
		}
		log.Error().Err(err).Msg("create client failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	h.notifier.EntityChanged("clients", "created", client.ID)
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// Update edits contact fields and pushes them into the client's
// memberships so both tables stay in step. The points field is not
// accepted here; balances move only through the atomic adjustment.
func (h *ClientHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	client, err := h.clientRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "client")
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrs := validateClient(&req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	oldEmail := client.Email
	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	if err := h.clientRepo.Update(client); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "Ya existe un cliente con este email"}})
			return
		}
		log.Error().Err(err).Uint("client_id", client.ID).Msg("update client failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	if err := h.membershipRepo.SyncClientFields(oldEmail, client.Name, client.Phone, client.Email); err != nil {
		// Membership sync is best-effort; the client update stands.
		log.Error().Err(err).Str("email", oldEmail).Msg("sync memberships failed")
	}
	h.notifier.EntityChanged("clients", "updated", client.ID)
	c.JSON(http.StatusOK, gin.H{"client": client})
}

type DeleteClientRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// GuardStatus lets the console show lockout state before asking for a PIN.
func (h *ClientHandler) GuardStatus(c *gin.Context) {
	st, err := h.deleteGuard.Status(h.guardAction)
	if err != nil {
		log.Error().Err(err).Msg("guard status failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// Delete removes a client record behind the PIN guard. Memberships are
// never cascaded: history stays intact and the response says how many
// membership records remain.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req DeleteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, st, err := h.deleteGuard.Submit(h.guardAction, req.PIN)
	if err != nil {
		if errors.Is(err, guard.ErrBlocked) {
			c.JSON(http.StatusLocked, gin.H{
				"error":  fmt.Sprintf("Acceso bloqueado por seguridad. Intenta nuevamente en %d segundos.", st.RemainingSeconds),
				"status": st,
			})
			return
		}
		log.Error().Err(err).Msg("guard submit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	if !ok {
		if st.Blocked {
			c.JSON(http.StatusLocked, gin.H{
				"error":  "Demasiados intentos fallidos. Acceso bloqueado por 15 minutos.",
				"status": st,
			})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error":  fmt.Sprintf("PIN incorrecto. Te quedan %d intentos.", st.AttemptsLeft),
			"status": st,
		})
		return
	}

	client, err := h.clientRepo.GetByID(uint(id))
	if err != nil {
		notFoundOr500(c, err, "client")
		return
	}
	membershipCount := int64(0)
	if client.Email != "" {
		membershipCount, _ = h.membershipRepo.CountByClientEmail(client.Email)
	}
	if err := h.clientRepo.Delete(client.ID); err != nil {
		log.Error().Err(err).Uint("client_id", client.ID).Msg("delete client failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "service unavailable, please retry"})
		return
	}
	_ = h.auditRepo.Log(middleware.GetOperatorID(c), "client_deleted", client.Email, c.ClientIP())
	h.notifier.EntityChanged("clients", "deleted", client.ID)
	c.JSON(http.StatusOK, gin.H{
		"status":                "deleted",
		"remaining_memberships": membershipCount,
	})
}
