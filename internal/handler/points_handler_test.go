package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"
	"dermasilk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Membership{},
		&models.RewardItem{},
		&models.RewardTransaction{},
		&models.GuardState{},
		&models.AuditLog{},
	))
	return db
}

func newPointsRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ledgerRepo := repository.NewLedgerRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	rewardsSvc := service.NewRewardsService(rewardRepo, ledgerRepo)
	h := NewPointsHandler(ledgerRepo, rewardsSvc, auditRepo, NopNotifier{})

	r := gin.New()
	r.POST("/points/adjust", h.Adjust)
	r.POST("/points/redeem", h.Redeem)
	r.GET("/clients/:id/balance", h.Balance)
	r.GET("/clients/:id/transactions", h.ClientTransactions)
	r.GET("/clients/:id/rewards", h.Eligible)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedClient(t *testing.T, db *gorm.DB, points int) *models.Client {
	t.Helper()
	c := &models.Client{Name: "LUISA MARIN SOTO", Email: "luisa@example.com", Phone: "5544332211", Points: points}
	require.NoError(t, db.Create(c).Error)
	if points > 0 {
		require.NoError(t, db.Create(&models.RewardTransaction{
			ClientID:        c.ID,
			Points:          points,
			TransactionType: domain.TxEarned,
			Reason:          "Saldo inicial",
		}).Error)
	}
	return c
}

func TestAdjustEarnsPoints(t *testing.T) {
	db := newTestDB(t)
	r := newPointsRouter(t, db)
	client := seedClient(t, db, 0)

	w := doJSON(r, http.MethodPost, "/points/adjust", gin.H{
		"client_id":        client.ID,
		"points":           50,
		"transaction_type": "earned",
		"reason":           "Reseña 5 estrellas",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		NewBalance int `json:"new_balance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.NewBalance)
}

func TestAdjustRejectsMissingReason(t *testing.T) {
	db := newTestDB(t)
	r := newPointsRouter(t, db)
	client := seedClient(t, db, 0)

	w := doJSON(r, http.MethodPost, "/points/adjust", gin.H{
		"client_id":        client.ID,
		"points":           50,
		"transaction_type": "earned",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedeemFlow(t *testing.T) {
	db := newTestDB(t)
	r := newPointsRouter(t, db)
	client := seedClient(t, db, 500)
	reward := &models.RewardItem{Name: "Facial gratis", PointsRequired: 300, Category: domain.CategoryServicios, Active: true}
	require.NoError(t, db.Create(reward).Error)

	w := doJSON(r, http.MethodPost, "/points/redeem", gin.H{
		"client_id": client.ID,
		"reward_id": reward.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		NewBalance  int `json:"new_balance"`
		PointsSpent int `json:"points_spent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.NewBalance)
	assert.Equal(t, 300, resp.PointsSpent)

	// Insufficient balance now: 200 < 300.
	w = doJSON(r, http.MethodPost, "/points/redeem", gin.H{
		"client_id": client.ID,
		"reward_id": reward.ID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Balance endpoint reports matching denormalized and projected values.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/clients/%d/balance", client.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bal struct {
		Points    int `json:"points"`
		Projected int `json:"projected"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bal))
	assert.Equal(t, 200, bal.Points)
	assert.Equal(t, bal.Points, bal.Projected)
}

func TestRedeemUnknownClientIs404(t *testing.T) {
	db := newTestDB(t)
	r := newPointsRouter(t, db)
	reward := &models.RewardItem{Name: "Facial gratis", PointsRequired: 300, Category: domain.CategoryServicios, Active: true}
	require.NoError(t, db.Create(reward).Error)

	w := doJSON(r, http.MethodPost, "/points/redeem", gin.H{
		"client_id": 9999,
		"reward_id": reward.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEligibleMarksAffordability(t *testing.T) {
	db := newTestDB(t)
	r := newPointsRouter(t, db)
	client := seedClient(t, db, 100)
	require.NoError(t, db.Create(&models.RewardItem{Name: "Descuento 10%", PointsRequired: 50, Category: domain.CategoryDescuentos, Active: true}).Error)
	require.NoError(t, db.Create(&models.RewardItem{Name: "Paquete VIP", PointsRequired: 1000, Category: domain.CategoryVIP, Active: true}).Error)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/clients/%d/rewards", client.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Points  int `json:"points"`
		Rewards []struct {
			Name       string `json:"name"`
			Affordable bool   `json:"affordable"`
		} `json:"rewards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Points)
	require.Len(t, resp.Rewards, 2)
	for _, rw := range resp.Rewards {
		if rw.Name == "Descuento 10%" {
			assert.True(t, rw.Affordable)
		} else {
			assert.False(t, rw.Affordable)
		}
	}
}
