package businessflow

import (
	"testing"

	"github.com/amirphl/Simorgh/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeAutoPremium(t *testing.T) {
	s := models.DefaultRiskFactorSnapshot()

	t.Run("ExperiencedDriverCleanRecordNewVehicle", func(t *testing.T) {
		// 750 * 1 * 1 * 1 * 1.15
		premium := ComputeAutoPremium(s, 30, 0, 2, false)
		assert.InDelta(t, 862.50, premium, 0.001)
	})

	t.Run("YoungDriver", func(t *testing.T) {
		// 750 * 2 * 1.15
		premium := ComputeAutoPremium(s, 22, 0, 2, false)
		assert.InDelta(t, 1725.00, premium, 0.001)
	})

	t.Run("AgeCutoffRatesAsExperienced", func(t *testing.T) {
		// Exactly 25 is not a young driver
		premium := ComputeAutoPremium(s, 25, 0, 2, false)
		assert.InDelta(t, 862.50, premium, 0.001)
	})

	t.Run("OneRecentAccident", func(t *testing.T) {
		// 750 * 1.25 * 1.15
		premium := ComputeAutoPremium(s, 30, 1, 2, false)
		assert.InDelta(t, 1078.13, premium, 0.001)
	})

	t.Run("MultipleRecentAccidents", func(t *testing.T) {
		// 750 * 2.5 * 1.15
		premium := ComputeAutoPremium(s, 30, 2, 2, false)
		assert.InDelta(t, 2156.25, premium, 0.001)
	})

	t.Run("MidAgeVehicle", func(t *testing.T) {
		// Age 6 through 10 takes the mid factor: 750 * 1.5 * 1.15
		assert.InDelta(t, 1293.75, ComputeAutoPremium(s, 30, 0, 6, false), 0.001)
		assert.InDelta(t, 1293.75, ComputeAutoPremium(s, 30, 0, 10, false), 0.001)
	})

	t.Run("OldVehicle", func(t *testing.T) {
		// 750 * 2 * 1.15
		premium := ComputeAutoPremium(s, 30, 0, 11, false)
		assert.InDelta(t, 1725.00, premium, 0.001)
	})

	t.Run("FiveYearOldVehicleRatesAsNew", func(t *testing.T) {
		premium := ComputeAutoPremium(s, 30, 0, 5, false)
		assert.InDelta(t, 862.50, premium, 0.001)
	})

	t.Run("BundlingDiscount", func(t *testing.T) {
		// 750 * 0.9 * 1.15
		premium := ComputeAutoPremium(s, 30, 0, 2, true)
		assert.InDelta(t, 776.25, premium, 0.001)
	})

	t.Run("AllSurchargesCombine", func(t *testing.T) {
		// 750 * 2 * 2.5 * 2 * 1.15
		premium := ComputeAutoPremium(s, 20, 3, 15, false)
		assert.InDelta(t, 8625.00, premium, 0.001)
	})

	t.Run("Pure", func(t *testing.T) {
		first := ComputeAutoPremium(s, 30, 1, 7, true)
		second := ComputeAutoPremium(s, 30, 1, 7, true)
		assert.Equal(t, first, second)
	})
}

func TestComputeHomePremium(t *testing.T) {
	s := models.DefaultRiskFactorSnapshot()

	t.Run("ModestNewUrbanGasHome", func(t *testing.T) {
		// 500 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingGas, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 575.00, premium, 0.001)
	})

	t.Run("HighValueSurchargeUsesFullValue", func(t *testing.T) {
		// (500 + 300000*0.002) * 1.15
		premium := ComputeHomePremium(s, 300_000, 10, models.HeatingGas, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 1265.00, premium, 0.001)
	})

	t.Run("ValueAtBaselineTakesNoSurcharge", func(t *testing.T) {
		premium := ComputeHomePremium(s, 250_000, 10, models.HeatingGas, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 575.00, premium, 0.001)
	})

	t.Run("HighLiabilityLimit", func(t *testing.T) {
		// 500 * 1.25 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingGas, models.LocationUrban, 2_000_000, false)
		assert.InDelta(t, 718.75, premium, 0.001)
	})

	t.Run("MidAgeHome", func(t *testing.T) {
		// Age 26 through 50 takes the mid factor: 500 * 1.25 * 1.15
		assert.InDelta(t, 718.75, ComputeHomePremium(s, 200_000, 26, models.HeatingGas, models.LocationUrban, 1_000_000, false), 0.001)
		assert.InDelta(t, 718.75, ComputeHomePremium(s, 200_000, 50, models.HeatingGas, models.LocationUrban, 1_000_000, false), 0.001)
	})

	t.Run("OldHome", func(t *testing.T) {
		// 500 * 1.5 * 1.15
		premium := ComputeHomePremium(s, 200_000, 51, models.HeatingGas, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 862.50, premium, 0.001)
	})

	t.Run("TwentyFiveYearOldHomeRatesAsNew", func(t *testing.T) {
		premium := ComputeHomePremium(s, 200_000, 25, models.HeatingGas, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 575.00, premium, 0.001)
	})

	t.Run("OilHeating", func(t *testing.T) {
		// 500 * 2 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingOil, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 1150.00, premium, 0.001)
	})

	t.Run("WoodHeating", func(t *testing.T) {
		// 500 * 1.25 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingWood, models.LocationUrban, 1_000_000, false)
		assert.InDelta(t, 718.75, premium, 0.001)
	})

	t.Run("RuralLocation", func(t *testing.T) {
		// 500 * 1.15 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingGas, models.LocationRural, 1_000_000, false)
		assert.InDelta(t, 661.25, premium, 0.001)
	})

	t.Run("BundlingDiscount", func(t *testing.T) {
		// 500 * 0.9 * 1.15
		premium := ComputeHomePremium(s, 200_000, 10, models.HeatingGas, models.LocationUrban, 1_000_000, true)
		assert.InDelta(t, 517.50, premium, 0.001)
	})
}
