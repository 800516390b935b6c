package repository

import (
	"testing"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInactiveRewardStaysInactive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRewardRepository(db)

	item := &models.RewardItem{
		Name:           "Descuento retirado",
		PointsRequired: 50,
		Category:       domain.CategoryDescuentos,
		Active:         false,
	}
	require.NoError(t, repo.Create(item))

	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.False(t, got.Active, "an item created inactive must be stored inactive")

	active, err := repo.List("", true)
	require.NoError(t, err)
	for _, r := range active {
		assert.NotEqual(t, item.ID, r.ID, "inactive items stay out of the active listing")
	}
}

func TestSetActiveRoundTrips(t *testing.T) {
	db := newTestDB(t)
	repo := NewRewardRepository(db)

	item := &models.RewardItem{Name: "Facial gratis", PointsRequired: 300, Category: domain.CategoryServicios, Active: true}
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.SetActive(item.ID, false))
	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, repo.SetActive(item.ID, true))
	got, err = repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}
