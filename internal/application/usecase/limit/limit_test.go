package limit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/persistence"
)

func newLimitFixture(t *testing.T) (*SetCategoryLimitsUseCase, *GetCategoryLimitsUseCase) {
	t.Helper()
	store := persistence.NewMemoryStore()
	ledgerRepo := persistence.NewLedgerRepository(store, "test")
	return NewSetCategoryLimitsUseCase(ledgerRepo), NewGetCategoryLimitsUseCase(ledgerRepo)
}

func TestSetCategoryLimitsUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)

	t.Run("persists valid limits", func(t *testing.T) {
		set, get := newLimitFixture(t)

		output, err := set.Execute(ctx, SetCategoryLimitsInput{
			Month: month,
			Limits: map[string]float64{
				"Food & Groceries": 5000,
				"Transport":        1200.50,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 5000.0, output.Limits[entity.CategoryFoodGroceries])

		loaded, err := get.Execute(ctx, GetCategoryLimitsInput{Month: month})
		require.NoError(t, err)
		assert.Equal(t, 1200.50, loaded.Limits[entity.CategoryTransport])
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		set, _ := newLimitFixture(t)

		_, err := set.Execute(ctx, SetCategoryLimitsInput{
			Month:  month,
			Limits: map[string]float64{"groceries": 5000},
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidCategory)
	})

	t.Run("rejects non-positive threshold", func(t *testing.T) {
		set, _ := newLimitFixture(t)

		for _, threshold := range []float64{0, -100} {
			_, err := set.Execute(ctx, SetCategoryLimitsInput{
				Month:  month,
				Limits: map[string]float64{"Food & Groceries": threshold},
			})
			assert.ErrorIs(t, err, domainerror.ErrInvalidLimit)
		}
	})

	t.Run("replaces limits wholesale", func(t *testing.T) {
		set, get := newLimitFixture(t)

		_, err := set.Execute(ctx, SetCategoryLimitsInput{
			Month: month,
			Limits: map[string]float64{
				"Food & Groceries": 5000,
				"Bills":            3000,
			},
		})
		require.NoError(t, err)

		_, err = set.Execute(ctx, SetCategoryLimitsInput{
			Month:  month,
			Limits: map[string]float64{"Food & Groceries": 4000},
		})
		require.NoError(t, err)

		loaded, err := get.Execute(ctx, GetCategoryLimitsInput{Month: month})
		require.NoError(t, err)
		assert.Equal(t, 4000.0, loaded.Limits[entity.CategoryFoodGroceries])
		assert.NotContains(t, loaded.Limits, entity.CategoryBills)
	})
}
