package pricing

import (
	"testing"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthly(t *testing.T) {
	m, err := Monthly(domain.AreaGrande, domain.PlanCompleta)
	require.NoError(t, err)
	assert.Equal(t, 675.0, m)

	m, err = Monthly(domain.AreaChica, domain.PlanPlatinum)
	require.NoError(t, err)
	assert.Equal(t, 285.0, m)

	_, err = Monthly("gigantes", domain.PlanCompleta)
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestSessions(t *testing.T) {
	for plan, want := range map[string]int{
		domain.PlanEsencial: 6,
		domain.PlanCompleta: 9,
		domain.PlanPlatinum: 12,
	} {
		got, err := Sessions(plan)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Sessions("premium")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestQuoteForSumsAreas(t *testing.T) {
	areas := []models.Area{
		{Category: domain.AreaGrande, Name: "Piernas completas"},
		{Category: domain.AreaMediana, Name: "Brazos"},
		{Category: domain.AreaChica, Name: "Bigote"},
	}
	q, err := QuoteFor(areas, domain.PlanCompleta)
	require.NoError(t, err)
	assert.Equal(t, 675.0+500+335, q.Monthly)
	assert.Equal(t, 9, q.Sessions)
}

func TestQuoteForUnknownCategory(t *testing.T) {
	_, err := QuoteFor([]models.Area{{Category: "espalda", Name: "Espalda"}}, domain.PlanEsencial)
	assert.ErrorIs(t, err, ErrUnknownPlan)
}
