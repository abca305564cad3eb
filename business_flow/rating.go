package businessflow

import (
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
)

// ComputeAutoPremium prices one vehicle for one driver against a single
// snapshot of the risk factor table. It is a pure calculation: same inputs,
// same premium, no side effects.
//
// The factor chain starts at the auto base premium and multiplies in the
// driver age band, the accident history band, the vehicle age band, the
// bundling discount when the customer already holds an active home policy,
// and finally tax. The result is rounded to cents.
func ComputeAutoPremium(s *models.RiskFactorSnapshot, driverAge, recentAccidents, vehicleAge int, bundled bool) float64 {
	premium := float64(s.AutoBasePremium)

	if driverAge < utils.YoungDriverAgeCutoff {
		premium *= s.DriverYoung
	} else {
		premium *= s.DriverOld
	}

	switch {
	case recentAccidents > 1:
		premium *= s.AccidentsMany
	case recentAccidents > 0:
		premium *= s.AccidentsFew
	default:
		premium *= s.AccidentsNone
	}

	switch {
	case vehicleAge > 10:
		premium *= s.VehicleOld
	case vehicleAge > 5:
		premium *= s.VehicleMid
	default:
		premium *= s.VehicleNew
	}

	if bundled {
		premium *= s.DiscountForBoth
	}

	premium *= 1 + s.TaxRate

	return utils.Round2(premium)
}

// ComputeHomePremium prices one home against a single snapshot of the risk
// factor table. Like ComputeAutoPremium it is pure.
//
// Homes valued strictly above the baseline take a surcharge of the full home
// value times the value percentage, not just the excess. The chain then
// multiplies in the liability band, the home age band, heating, location,
// the bundling discount when the customer already holds an active auto
// policy, and tax.
func ComputeHomePremium(s *models.RiskFactorSnapshot, homeValue, homeAge int, heating models.HeatingType, location models.HomeLocation, liabilityLimit int, bundled bool) float64 {
	premium := float64(s.HomeBasePremium)

	if homeValue > s.HomeValueBaseLine {
		premium += float64(homeValue) * s.HomeValuePercentage
	}

	premium *= s.LiabilityFactor(liabilityLimit, utils.HighLiabilityLimit)

	switch {
	case homeAge > 50:
		premium *= s.HomeOldAge
	case homeAge > 25:
		premium *= s.HomeMidAge
	default:
		premium *= s.HomeNewAge
	}

	premium *= s.HeatingFactor(heating)
	premium *= s.LocationFactor(location)

	if bundled {
		premium *= s.DiscountForBoth
	}

	premium *= 1 + s.TaxRate

	return utils.Round2(premium)
}
