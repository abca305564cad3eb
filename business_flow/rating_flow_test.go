package businessflow

import (
	"context"
	"testing"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingFlowHarness struct {
	flow           RatingFlow
	customerRepo   *fakeCustomerRepo
	vehicleRepo    *fakeVehicleRepo
	homeRepo       *fakeHomeRepo
	accidentRepo   *fakeAccidentRepo
	autoQuoteRepo  *fakeAutoQuoteRepo
	homeQuoteRepo  *fakeHomeQuoteRepo
	autoPolicyRepo *fakeAutoPolicyRepo
	homePolicyRepo *fakeHomePolicyRepo
}

func newRatingFlowHarness() *ratingFlowHarness {
	h := &ratingFlowHarness{
		customerRepo:   newFakeCustomerRepo(),
		vehicleRepo:    newFakeVehicleRepo(),
		homeRepo:       newFakeHomeRepo(),
		accidentRepo:   &fakeAccidentRepo{},
		autoQuoteRepo:  newFakeAutoQuoteRepo(),
		homeQuoteRepo:  newFakeHomeQuoteRepo(),
		autoPolicyRepo: newFakeAutoPolicyRepo(),
		homePolicyRepo: newFakeHomePolicyRepo(),
	}

	riskFactorRepo := &fakeRiskFactorRepo{}
	_ = riskFactorRepo.Save(context.Background(), models.DefaultRiskFactorSnapshot())

	h.flow = NewRatingFlow(
		h.customerRepo,
		h.vehicleRepo,
		h.homeRepo,
		h.accidentRepo,
		h.autoQuoteRepo,
		h.homeQuoteRepo,
		h.autoPolicyRepo,
		h.homePolicyRepo,
		NewRiskFactorFlow(riskFactorRepo, nil, nil),
	)

	return h
}

func (h *ratingFlowHarness) addCustomer(id uint, ageYears int) *models.Customer {
	customer := &models.Customer{
		ID:       id,
		Birthday: utils.UTCNow().AddDate(-ageYears, 0, -1),
	}
	h.customerRepo.customers[id] = customer
	return customer
}

func (h *ratingFlowHarness) addVehicle(id, customerID uint, vehicleAge int) *models.Vehicle {
	vehicle := &models.Vehicle{
		ID:         id,
		CustomerID: customerID,
		ModelYear:  utils.UTCNow().Year() - vehicleAge,
	}
	h.vehicleRepo.vehicles[id] = vehicle
	return vehicle
}

func (h *ratingFlowHarness) addHome(id, customerID uint, value, ageYears int, heating models.HeatingType, location models.HomeLocation) *models.Home {
	home := &models.Home{
		ID:          id,
		CustomerID:  customerID,
		HomeValue:   value,
		DateBuilt:   utils.UTCNow().AddDate(-ageYears, 0, -1),
		HeatingType: heating,
		Location:    location,
	}
	h.homeRepo.homes[id] = home
	return home
}

func TestGenerateAutoQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("CleanRecordExperiencedDriver", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 862.50, resp.Quote.Premium, 0.001)
		assert.Equal(t, 750, resp.Quote.BasePremium)
		assert.InDelta(t, 0.15, resp.Quote.TaxRate, 0.001)
		assert.True(t, resp.Quote.Active)

		// The quote must be persisted
		saved, err := h.autoQuoteRepo.ByID(ctx, resp.Quote.ID)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.True(t, saved.Active)
	})

	t.Run("RecentAccidentsRaisePremium", func(t *testing.T) {
		h := newRatingFlowHarness()
		customer := h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		now := utils.UTCNow()
		h.accidentRepo.accidents = []*models.Accident{
			{ID: 1, CustomerID: customer.ID, Date: now.AddDate(-1, 0, 0)},
			{ID: 2, CustomerID: customer.ID, Date: now.AddDate(-2, 0, 0)},
		}

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 2156.25, resp.Quote.Premium, 0.001)
	})

	t.Run("AccidentsOutsideWindowDoNotCount", func(t *testing.T) {
		h := newRatingFlowHarness()
		customer := h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		h.accidentRepo.accidents = []*models.Accident{
			{ID: 1, CustomerID: customer.ID, Date: utils.UTCNow().AddDate(-6, 0, 0)},
		}

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 862.50, resp.Quote.Premium, 0.001)
	})

	t.Run("PackagedPurchaseEarnsDiscountWithoutExistingPolicies", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		require.Empty(t, h.homePolicyRepo.policies)

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1, PackagedQuote: true})
		require.NoError(t, err)
		assert.InDelta(t, 776.25, resp.Quote.Premium, 0.001)
	})

	t.Run("ActiveHomePolicyEarnsBundlingDiscount", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		h.homePolicyRepo.policies[1] = &models.HomePolicy{ID: 1, CustomerID: 1, Active: true, EndDate: utils.UTCNow().AddDate(1, 0, 0)}

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 776.25, resp.Quote.Premium, 0.001)
	})

	t.Run("MultipleHomePoliciesDoNotStackDiscount", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		end := utils.UTCNow().AddDate(1, 0, 0)
		h.homePolicyRepo.policies[1] = &models.HomePolicy{ID: 1, CustomerID: 1, Active: true, EndDate: end}
		h.homePolicyRepo.policies[2] = &models.HomePolicy{ID: 2, CustomerID: 1, Active: true, EndDate: end}

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 776.25, resp.Quote.Premium, 0.001)
	})

	t.Run("InactiveHomePolicyEarnsNoDiscount", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addVehicle(1, 1, 2)
		h.homePolicyRepo.policies[1] = &models.HomePolicy{ID: 1, CustomerID: 1, Active: false, EndDate: utils.UTCNow().AddDate(1, 0, 0)}

		resp, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.NoError(t, err)
		assert.InDelta(t, 862.50, resp.Quote.Premium, 0.001)
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		h := newRatingFlowHarness()

		_, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 42, VehicleID: 1})
		require.Error(t, err)
		assert.True(t, IsCustomerNotFound(err))
	})

	t.Run("VehicleOwnedByAnotherCustomer", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addCustomer(2, 40)
		h.addVehicle(1, 2, 2)

		_, err := h.flow.GenerateAutoQuote(ctx, &dto.GenerateAutoQuoteRequest{CustomerID: 1, VehicleID: 1})
		require.Error(t, err)
		assert.True(t, IsVehicleNotFound(err))
	})
}

func TestGenerateHomeQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("ModestNewUrbanGasHome", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addHome(1, 1, 200_000, 10, models.HeatingGas, models.LocationUrban)

		resp, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 1, LiabilityLimit: utils.LowLiabilityLimit})
		require.NoError(t, err)
		assert.InDelta(t, 575.00, resp.Quote.Premium, 0.001)
		assert.Equal(t, 500, resp.Quote.BasePremium)
		assert.Equal(t, utils.LowLiabilityLimit, resp.Quote.LiabilityLimit)
		assert.True(t, resp.Quote.Active)
	})

	t.Run("HighValueHome", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addHome(1, 1, 300_000, 10, models.HeatingGas, models.LocationUrban)

		resp, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 1, LiabilityLimit: utils.LowLiabilityLimit})
		require.NoError(t, err)
		assert.InDelta(t, 1265.00, resp.Quote.Premium, 0.001)
	})

	t.Run("PackagedPurchaseEarnsDiscountWithoutExistingPolicies", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addHome(1, 1, 200_000, 10, models.HeatingGas, models.LocationUrban)
		require.Empty(t, h.autoPolicyRepo.policies)

		resp, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 1, LiabilityLimit: utils.LowLiabilityLimit, PackagedQuote: true})
		require.NoError(t, err)
		assert.InDelta(t, 517.50, resp.Quote.Premium, 0.001)
	})

	t.Run("ActiveAutoPolicyEarnsBundlingDiscount", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addHome(1, 1, 200_000, 10, models.HeatingGas, models.LocationUrban)
		h.autoPolicyRepo.policies[1] = &models.AutoPolicy{ID: 1, CustomerID: 1, Active: true, EndDate: utils.UTCNow().AddDate(1, 0, 0)}

		resp, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 1, LiabilityLimit: utils.LowLiabilityLimit})
		require.NoError(t, err)
		assert.InDelta(t, 517.50, resp.Quote.Premium, 0.001)
	})

	t.Run("UnsupportedLiabilityLimit", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)
		h.addHome(1, 1, 200_000, 10, models.HeatingGas, models.LocationUrban)

		_, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 1, LiabilityLimit: 1_500_000})
		require.Error(t, err)
		assert.True(t, IsLiabilityLimitInvalid(err))
	})

	t.Run("HomeNotFound", func(t *testing.T) {
		h := newRatingFlowHarness()
		h.addCustomer(1, 30)

		_, err := h.flow.GenerateHomeQuote(ctx, &dto.GenerateHomeQuoteRequest{CustomerID: 1, HomeID: 9, LiabilityLimit: utils.LowLiabilityLimit})
		require.Error(t, err)
		assert.True(t, IsHomeNotFound(err))
	})
}
