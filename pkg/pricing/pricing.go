// Package pricing holds the clinic's membership price list: monthly price
// per body-area category and plan, and sessions per plan.
package pricing

import (
	"errors"

	"dermasilk/internal/domain"
	"dermasilk/internal/models"
)

var ErrUnknownPlan = errors.New("unknown plan or area category")

type planPrice struct {
	Monthly  float64
	Sessions int
}

var priceTable = map[string]map[string]planPrice{
	domain.AreaGrande: {
		domain.PlanEsencial: {Monthly: 800, Sessions: 6},
		domain.PlanCompleta: {Monthly: 675, Sessions: 9},
		domain.PlanPlatinum: {Monthly: 575, Sessions: 12},
	},
	domain.AreaMediana: {
		domain.PlanEsencial: {Monthly: 600, Sessions: 6},
		domain.PlanCompleta: {Monthly: 500, Sessions: 9},
		domain.PlanPlatinum: {Monthly: 425, Sessions: 12},
	},
	domain.AreaChica: {
		domain.PlanEsencial: {Monthly: 400, Sessions: 6},
		domain.PlanCompleta: {Monthly: 335, Sessions: 9},
		domain.PlanPlatinum: {Monthly: 285, Sessions: 12},
	},
}

// Monthly returns the list price for a single area under a plan.
func Monthly(areaCategory, plan string) (float64, error) {
	plans, ok := priceTable[areaCategory]
	if !ok {
		return 0, ErrUnknownPlan
	}
	p, ok := plans[plan]
	if !ok {
		return 0, ErrUnknownPlan
	}
	return p.Monthly, nil
}

// Sessions returns the number of sessions a plan includes.
func Sessions(plan string) (int, error) {
	switch plan {
	case domain.PlanEsencial:
		return 6, nil
	case domain.PlanCompleta:
		return 9, nil
	case domain.PlanPlatinum:
		return 12, nil
	}
	return 0, ErrUnknownPlan
}

// Quote is the suggested monthly payment for a set of areas: the sum of
// each area's individual list price. Combo discounts are set by the
// operator on the form, so the quote doubles as the "individual total"
// used to show savings.
type Quote struct {
	Monthly  float64 `json:"monthly_payment"`
	Sessions int     `json:"total_sessions"`
}

func QuoteFor(areas []models.Area, plan string) (*Quote, error) {
	sessions, err := Sessions(plan)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, a := range areas {
		m, err := Monthly(a.Category, plan)
		if err != nil {
			return nil, err
		}
		total += m
	}
	return &Quote{Monthly: total, Sessions: sessions}, nil
}
