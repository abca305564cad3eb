package businessflow

import (
	"context"
	"testing"

	"github.com/amirphl/Simorgh/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteFlowHarness() (QuoteFlow, *fakeCustomerRepo, *fakeAutoQuoteRepo, *fakeHomeQuoteRepo) {
	customerRepo := newFakeCustomerRepo()
	autoQuoteRepo := newFakeAutoQuoteRepo()
	homeQuoteRepo := newFakeHomeQuoteRepo()
	flow := NewQuoteFlow(customerRepo, autoQuoteRepo, homeQuoteRepo)
	return flow, customerRepo, autoQuoteRepo, homeQuoteRepo
}

func TestGetAutoQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		flow, _, autoQuoteRepo, _ := newQuoteFlowHarness()
		autoQuoteRepo.quotes[1] = &models.AutoQuote{ID: 1, CustomerID: 1, VehicleID: 1, Premium: 862.50, Active: true}

		resp, err := flow.GetAutoQuote(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.Quote.ID)
		assert.InDelta(t, 862.50, resp.Quote.Premium, 0.001)
	})

	t.Run("NotFound", func(t *testing.T) {
		flow, _, _, _ := newQuoteFlowHarness()

		_, err := flow.GetAutoQuote(ctx, 9)
		require.Error(t, err)
		assert.True(t, IsQuoteNotFound(err))
	})
}

func TestListAutoQuotes(t *testing.T) {
	ctx := context.Background()

	t.Run("ActiveOnlyFiltersInactive", func(t *testing.T) {
		flow, customerRepo, autoQuoteRepo, _ := newQuoteFlowHarness()
		customerRepo.customers[1] = &models.Customer{ID: 1}
		autoQuoteRepo.quotes[1] = &models.AutoQuote{ID: 1, CustomerID: 1, Active: true}
		autoQuoteRepo.quotes[2] = &models.AutoQuote{ID: 2, CustomerID: 1, Active: false}

		resp, err := flow.ListAutoQuotes(ctx, 1, true)
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, uint(1), resp.Items[0].ID)

		resp, err = flow.ListAutoQuotes(ctx, 1, false)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		flow, _, _, _ := newQuoteFlowHarness()

		_, err := flow.ListAutoQuotes(ctx, 9, false)
		require.Error(t, err)
		assert.True(t, IsCustomerNotFound(err))
	})
}

func TestDeactivateAutoQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("DeactivatesActiveQuote", func(t *testing.T) {
		flow, _, autoQuoteRepo, _ := newQuoteFlowHarness()
		autoQuoteRepo.quotes[1] = &models.AutoQuote{ID: 1, CustomerID: 1, Active: true}

		_, err := flow.DeactivateAutoQuote(ctx, 1)
		require.NoError(t, err)

		quote, _ := autoQuoteRepo.ByID(ctx, 1)
		assert.False(t, quote.Active)
	})

	t.Run("AlreadyInactive", func(t *testing.T) {
		flow, _, autoQuoteRepo, _ := newQuoteFlowHarness()
		autoQuoteRepo.quotes[1] = &models.AutoQuote{ID: 1, CustomerID: 1, Active: false}

		_, err := flow.DeactivateAutoQuote(ctx, 1)
		require.Error(t, err)
		assert.True(t, IsQuoteAlreadyInactive(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		flow, _, _, _ := newQuoteFlowHarness()

		_, err := flow.DeactivateAutoQuote(ctx, 9)
		require.Error(t, err)
		assert.True(t, IsQuoteNotFound(err))
	})
}

func TestDeactivateHomeQuote(t *testing.T) {
	ctx := context.Background()

	flow, _, _, homeQuoteRepo := newQuoteFlowHarness()
	homeQuoteRepo.quotes[1] = &models.HomeQuote{ID: 1, CustomerID: 1, Active: true}

	_, err := flow.DeactivateHomeQuote(ctx, 1)
	require.NoError(t, err)

	quote, _ := homeQuoteRepo.ByID(ctx, 1)
	assert.False(t, quote.Active)
}
