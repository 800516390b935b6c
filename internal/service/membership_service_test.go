package service

import (
	"testing"
	"time"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMembership(email string) *models.Membership {
	e := email
	return &models.Membership{
		ClientName:     "Sofía Hernández Díaz",
		ClientPhone:    "5511223344",
		ClientEmail:    &e,
		MembershipType: domain.MembershipIndividual,
		PlanName:       domain.PlanCompleta,
		Areas:          []models.Area{{Category: domain.AreaGrande, Name: "Piernas completas"}},
		MonthlyPayment: 675,
		TotalSessions:  9,
		StartDate:      time.Now(),
		Status:         domain.StatusActiva,
	}
}

func newMembershipService(db *gorm.DB) *MembershipService {
	return NewMembershipService(repository.NewMembershipRepository(db), repository.NewClientRepository(db))
}

func TestCreateMembershipRegistersNewClient(t *testing.T) {
	db := newTestDB(t)
	svc := newMembershipService(db)

	m := newMembership("Sofia@Example.com")
	require.NoError(t, svc.Create(m))

	var c models.Client
	require.NoError(t, db.Where("email = ?", "sofia@example.com").First(&c).Error)
	assert.Equal(t, "SOFIA HERNANDEZ DIAZ", c.Name, "name is stored accent-free and uppercased")
	assert.Equal(t, "5511223344", c.Phone)
	assert.Equal(t, 0, c.Points, "implicit clients start with zero points")
}

func TestCreateMembershipRefreshesExistingClient(t *testing.T) {
	db := newTestDB(t)
	svc := newMembershipService(db)

	existing := &models.Client{Name: "SOFIA HERNANDEZ DIAZ", Email: "sofia@example.com", Phone: "5500000000", Points: 250}
	require.NoError(t, db.Create(existing).Error)

	m := newMembership("sofia@example.com")
	require.NoError(t, svc.Create(m))

	var c models.Client
	require.NoError(t, db.First(&c, existing.ID).Error)
	assert.Equal(t, "5511223344", c.Phone, "contact data refreshed from the form")
	assert.Equal(t, 250, c.Points, "points untouched by contact sync")

	var count int64
	require.NoError(t, db.Model(&models.Client{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no duplicate client for a known email")
}

func TestUpdateMembershipSyncsClient(t *testing.T) {
	db := newTestDB(t)
	svc := newMembershipService(db)

	m := newMembership("sofia@example.com")
	require.NoError(t, svc.Create(m))

	m.ClientName = "Sofía Hernández de la Cruz"
	m.ClientPhone = "5599887766"
	require.NoError(t, svc.Update(m))

	var c models.Client
	require.NoError(t, db.Where("email = ?", "sofia@example.com").First(&c).Error)
	assert.Equal(t, "SOFIA HERNANDEZ DE LA CRUZ", c.Name)
	assert.Equal(t, "5599887766", c.Phone)
}

func TestCompleteSessionProgressAndCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := newMembershipService(db)

	m := newMembership("sofia@example.com")
	m.TotalSessions = 2
	require.NoError(t, svc.Create(m))

	got, err := svc.CompleteSession(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedSessions)
	assert.Equal(t, domain.StatusActiva, got.Status)

	got, err = svc.CompleteSession(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CompletedSessions)
	assert.Equal(t, domain.StatusCompletada, got.Status)

	// Extra completions are a no-op once the plan is used up.
	got, err = svc.CompleteSession(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CompletedSessions)
}

func TestDeletingClientKeepsMemberships(t *testing.T) {
	db := newTestDB(t)
	svc := newMembershipService(db)
	clientRepo := repository.NewClientRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	m := newMembership("sofia@example.com")
	require.NoError(t, svc.Create(m))

	var c models.Client
	require.NoError(t, db.Where("email = ?", "sofia@example.com").First(&c).Error)
	require.NoError(t, clientRepo.Delete(c.ID))

	count, err := membershipRepo.CountByClientEmail("sofia@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "membership history outlives the client record")
}
