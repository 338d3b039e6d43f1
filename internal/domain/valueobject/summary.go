package valueobject

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendcount/backend/internal/domain/entity"
)

// LimitBreach records one category whose paid spending strictly exceeds its
// configured limit.
type LimitBreach struct {
	Category entity.Category
	Spent    float64
	Limit    float64
}

// MonthSummary holds the derived figures for one month. It is a pure
// function of the month's collections and is recomputed after every
// mutation, never cached across them.
type MonthSummary struct {
	TotalBudget     float64
	TotalSpent      float64
	Remaining       float64
	SpendByCategory map[entity.Category]float64
	LimitBreaches   []LimitBreach
	Overspent       bool
}

// Summarize computes the month summary from the current collections.
// Only paid expenses count towards spending; Remaining may be negative
// (a display concern, not a business error). Limit breaches use strict
// inequality: spending exactly at the limit is not a breach.
func Summarize(budgets []*entity.Budget, expenses []*entity.Expense, limits entity.CategoryLimits) MonthSummary {
	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(decimal.NewFromFloat(b.Amount))
	}

	totalSpent := decimal.Zero
	byCategory := make(map[entity.Category]decimal.Decimal)
	for _, e := range expenses {
		if !e.Paid {
			continue
		}
		amount := decimal.NewFromFloat(e.Amount)
		totalSpent = totalSpent.Add(amount)
		byCategory[e.Category] = byCategory[e.Category].Add(amount)
	}

	remaining := totalBudget.Sub(totalSpent)

	spendByCategory := make(map[entity.Category]float64, len(byCategory))
	for category, spent := range byCategory {
		spendByCategory[category] = spent.InexactFloat64()
	}

	var breaches []LimitBreach
	for category, limit := range limits {
		if limit <= 0 {
			continue
		}
		spent := byCategory[category]
		if spent.GreaterThan(decimal.NewFromFloat(limit)) {
			breaches = append(breaches, LimitBreach{
				Category: category,
				Spent:    spent.InexactFloat64(),
				Limit:    limit,
			})
		}
	}
	sort.Slice(breaches, func(i, j int) bool {
		return breaches[i].Category < breaches[j].Category
	})

	return MonthSummary{
		TotalBudget:     totalBudget.InexactFloat64(),
		TotalSpent:      totalSpent.InexactFloat64(),
		Remaining:       remaining.InexactFloat64(),
		SpendByCategory: spendByCategory,
		LimitBreaches:   breaches,
		Overspent:       remaining.IsNegative(),
	}
}
