package businessflow

import (
	"context"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
	"github.com/amirphl/Simorgh/utils"
)

// RatingFlow prices vehicles and homes and persists the results as quotes.
type RatingFlow interface {
	GenerateAutoQuote(ctx context.Context, req *dto.GenerateAutoQuoteRequest) (*dto.GenerateAutoQuoteResponse, error)
	GenerateHomeQuote(ctx context.Context, req *dto.GenerateHomeQuoteRequest) (*dto.GenerateHomeQuoteResponse, error)
}

type RatingFlowImpl struct {
	customerRepo   repository.CustomerRepository
	vehicleRepo    repository.VehicleRepository
	homeRepo       repository.HomeRepository
	accidentRepo   repository.AccidentRepository
	autoQuoteRepo  repository.AutoQuoteRepository
	homeQuoteRepo  repository.HomeQuoteRepository
	autoPolicyRepo repository.AutoPolicyRepository
	homePolicyRepo repository.HomePolicyRepository
	riskFactorFlow RiskFactorFlow
}

// NewRatingFlow creates a new rating flow instance
func NewRatingFlow(
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	homeRepo repository.HomeRepository,
	accidentRepo repository.AccidentRepository,
	autoQuoteRepo repository.AutoQuoteRepository,
	homeQuoteRepo repository.HomeQuoteRepository,
	autoPolicyRepo repository.AutoPolicyRepository,
	homePolicyRepo repository.HomePolicyRepository,
	riskFactorFlow RiskFactorFlow,
) RatingFlow {
	return &RatingFlowImpl{
		customerRepo:   customerRepo,
		vehicleRepo:    vehicleRepo,
		homeRepo:       homeRepo,
		accidentRepo:   accidentRepo,
		autoQuoteRepo:  autoQuoteRepo,
		homeQuoteRepo:  homeQuoteRepo,
		autoPolicyRepo: autoPolicyRepo,
		homePolicyRepo: homePolicyRepo,
		riskFactorFlow: riskFactorFlow,
	}
}

// GenerateAutoQuote rates one vehicle for one customer and persists the
// result. The quote captures the base premium and tax rate used, so it stays
// stable even if the risk factor table is replaced afterwards. A packaged
// request earns the bundling discount outright; otherwise holding an active
// home policy earns it. Additional home policies do not stack.
func (f *RatingFlowImpl) GenerateAutoQuote(ctx context.Context, req *dto.GenerateAutoQuoteRequest) (*dto.GenerateAutoQuoteResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, req.CustomerID)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("AUTO_QUOTE_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	vehicle, err := f.vehicleRepo.ByID(ctx, req.VehicleID)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_VEHICLE_LOOKUP_FAILED", "Failed to look up vehicle", err)
	}
	if vehicle == nil || vehicle.CustomerID != customer.ID {
		return nil, NewBusinessError("AUTO_QUOTE_VEHICLE_NOT_FOUND", "Vehicle not found for customer", ErrVehicleNotFound)
	}

	now := utils.UTCNow()
	windowStart := now.AddDate(-utils.AccidentWindowYears, 0, 0)
	recentAccidents, err := f.accidentRepo.CountSince(ctx, customer.ID, windowStart)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_ACCIDENT_LOOKUP_FAILED", "Failed to look up accident history", err)
	}

	bundled := req.PackagedQuote
	if !bundled {
		bundled, err = f.homePolicyRepo.Exists(ctx, models.HomePolicyFilter{
			CustomerID: &customer.ID,
			Active:     utils.ToPtr(true),
		})
		if err != nil {
			return nil, NewBusinessError("AUTO_QUOTE_BUNDLE_LOOKUP_FAILED", "Failed to look up active home policies", err)
		}
	}

	snapshot, err := f.riskFactorFlow.CurrentSnapshot(ctx)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_RISK_FACTORS_FAILED", "Failed to load risk factors", ErrRiskFactorsUnavailable)
	}

	driverAge := utils.YearsBetween(customer.Birthday, now)
	vehicleAge := now.Year() - vehicle.ModelYear
	premium := ComputeAutoPremium(snapshot, driverAge, int(recentAccidents), vehicleAge, bundled)

	quote := &models.AutoQuote{
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		GenerationDate: now,
		BasePremium:    snapshot.AutoBasePremium,
		Premium:        premium,
		TaxRate:        snapshot.TaxRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := f.autoQuoteRepo.Save(ctx, quote); err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_SAVE_FAILED", "Failed to save auto quote", err)
	}

	return &dto.GenerateAutoQuoteResponse{
		Message: "Auto quote generated successfully",
		Quote:   ToAutoQuoteItem(quote),
	}, nil
}

// GenerateHomeQuote rates one home for one customer and persists the result.
// A packaged request or an active auto policy earns the bundling discount.
func (f *RatingFlowImpl) GenerateHomeQuote(ctx context.Context, req *dto.GenerateHomeQuoteRequest) (*dto.GenerateHomeQuoteResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, req.CustomerID)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("HOME_QUOTE_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	home, err := f.homeRepo.ByID(ctx, req.HomeID)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_HOME_LOOKUP_FAILED", "Failed to look up home", err)
	}
	if home == nil || home.CustomerID != customer.ID {
		return nil, NewBusinessError("HOME_QUOTE_HOME_NOT_FOUND", "Home not found for customer", ErrHomeNotFound)
	}

	if req.LiabilityLimit != utils.HighLiabilityLimit && req.LiabilityLimit != utils.LowLiabilityLimit {
		return nil, NewBusinessError("HOME_QUOTE_LIABILITY_INVALID", "Unsupported liability limit", ErrLiabilityLimitInvalid)
	}

	bundled := req.PackagedQuote
	if !bundled {
		bundled, err = f.autoPolicyRepo.Exists(ctx, models.AutoPolicyFilter{
			CustomerID: &customer.ID,
			Active:     utils.ToPtr(true),
		})
		if err != nil {
			return nil, NewBusinessError("HOME_QUOTE_BUNDLE_LOOKUP_FAILED", "Failed to look up active auto policies", err)
		}
	}

	snapshot, err := f.riskFactorFlow.CurrentSnapshot(ctx)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_RISK_FACTORS_FAILED", "Failed to load risk factors", ErrRiskFactorsUnavailable)
	}

	now := utils.UTCNow()
	homeAge := utils.YearsBetween(home.DateBuilt, now)
	premium := ComputeHomePremium(snapshot, home.HomeValue, homeAge, home.HeatingType, home.Location, req.LiabilityLimit, bundled)

	quote := &models.HomeQuote{
		CustomerID:     customer.ID,
		HomeID:         home.ID,
		GenerationDate: now,
		LiabilityLimit: req.LiabilityLimit,
		BasePremium:    snapshot.HomeBasePremium,
		Premium:        premium,
		TaxRate:        snapshot.TaxRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := f.homeQuoteRepo.Save(ctx, quote); err != nil {
		return nil, NewBusinessError("HOME_QUOTE_SAVE_FAILED", "Failed to save home quote", err)
	}

	return &dto.GenerateHomeQuoteResponse{
		Message: "Home quote generated successfully",
		Quote:   ToHomeQuoteItem(quote),
	}, nil
}
