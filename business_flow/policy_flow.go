package businessflow

import (
	"context"
	"time"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
	"github.com/amirphl/Simorgh/utils"
)

// PolicyFlow converts quotes into policies and manages the policy lifecycle.
type PolicyFlow interface {
	IssueAutoPolicy(ctx context.Context, req *dto.IssueAutoPolicyRequest) (*dto.IssueAutoPolicyResponse, error)
	IssueHomePolicy(ctx context.Context, req *dto.IssueHomePolicyRequest) (*dto.IssueHomePolicyResponse, error)
	GetAutoPolicy(ctx context.Context, policyID uint) (*dto.GetAutoPolicyResponse, error)
	GetHomePolicy(ctx context.Context, policyID uint) (*dto.GetHomePolicyResponse, error)
	ListAutoPolicies(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListAutoPoliciesResponse, error)
	ListHomePolicies(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListHomePoliciesResponse, error)
	SetAutoPolicyStatus(ctx context.Context, policyID uint, active bool, endDate *time.Time) (*dto.UpdatePolicyStatusResponse, error)
	SetHomePolicyStatus(ctx context.Context, policyID uint, active bool, endDate *time.Time) (*dto.UpdatePolicyStatusResponse, error)
	DeactivateExpiredPolicies(ctx context.Context, asOf time.Time) (int, error)
}

type PolicyFlowImpl struct {
	customerRepo   repository.CustomerRepository
	autoQuoteRepo  repository.AutoQuoteRepository
	homeQuoteRepo  repository.HomeQuoteRepository
	autoPolicyRepo repository.AutoPolicyRepository
	homePolicyRepo repository.HomePolicyRepository
	txManager      repository.TransactionManager
}

// NewPolicyFlow creates a new policy flow instance
func NewPolicyFlow(
	customerRepo repository.CustomerRepository,
	autoQuoteRepo repository.AutoQuoteRepository,
	homeQuoteRepo repository.HomeQuoteRepository,
	autoPolicyRepo repository.AutoPolicyRepository,
	homePolicyRepo repository.HomePolicyRepository,
	txManager repository.TransactionManager,
) PolicyFlow {
	return &PolicyFlowImpl{
		customerRepo:   customerRepo,
		autoQuoteRepo:  autoQuoteRepo,
		homeQuoteRepo:  homeQuoteRepo,
		autoPolicyRepo: autoPolicyRepo,
		homePolicyRepo: homePolicyRepo,
		txManager:      txManager,
	}
}

// IssueAutoPolicy converts an active auto quote into a policy starting on the
// caller's effective date. The quote is re-read inside the transaction so a
// concurrent conversion of the same quote fails instead of producing two
// policies. The premium is copied verbatim from the quote; it is never
// recomputed at issuance.
func (f *PolicyFlowImpl) IssueAutoPolicy(ctx context.Context, req *dto.IssueAutoPolicyRequest) (*dto.IssueAutoPolicyResponse, error) {
	effective, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return nil, NewBusinessError("AUTO_POLICY_EFFECTIVE_DATE_INVALID", "Invalid effective date", ErrEffectiveDateInvalid)
	}

	var policy *models.AutoPolicy

	err = f.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quote, err := f.autoQuoteRepo.ByID(txCtx, req.QuoteID)
		if err != nil {
			return NewBusinessError("AUTO_POLICY_QUOTE_LOOKUP_FAILED", "Failed to look up auto quote", err)
		}
		if quote == nil {
			return NewBusinessError("AUTO_POLICY_QUOTE_NOT_FOUND", "Auto quote not found", ErrQuoteNotFound)
		}
		if !quote.Active {
			return NewBusinessError("AUTO_POLICY_QUOTE_INACTIVE", "Auto quote is no longer active", ErrQuoteAlreadyInactive)
		}

		now := utils.UTCNow()
		policy = &models.AutoPolicy{
			QuoteID:       quote.ID,
			CustomerID:    quote.CustomerID,
			VehicleID:     quote.VehicleID,
			EffectiveDate: effective,
			EndDate:       effective.AddDate(utils.PolicyTermYears, 0, 0),
			BasePremium:   quote.BasePremium,
			Premium:       quote.Premium,
			TaxRate:       quote.TaxRate,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := f.autoPolicyRepo.Save(txCtx, policy); err != nil {
			return NewBusinessError("AUTO_POLICY_SAVE_FAILED", "Failed to save auto policy", err)
		}

		if err := f.autoQuoteRepo.SetActive(txCtx, quote.ID, false); err != nil {
			return NewBusinessError("AUTO_POLICY_QUOTE_DEACTIVATE_FAILED", "Failed to deactivate converted quote", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.IssueAutoPolicyResponse{
		Message: "Auto policy issued successfully",
		Policy:  ToAutoPolicyItem(policy),
	}, nil
}

// IssueHomePolicy converts an active home quote into a policy starting on the
// caller's effective date. The liability limit chosen at quote time is carried
// onto the policy unchanged.
func (f *PolicyFlowImpl) IssueHomePolicy(ctx context.Context, req *dto.IssueHomePolicyRequest) (*dto.IssueHomePolicyResponse, error) {
	effective, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return nil, NewBusinessError("HOME_POLICY_EFFECTIVE_DATE_INVALID", "Invalid effective date", ErrEffectiveDateInvalid)
	}

	var policy *models.HomePolicy

	err = f.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quote, err := f.homeQuoteRepo.ByID(txCtx, req.QuoteID)
		if err != nil {
			return NewBusinessError("HOME_POLICY_QUOTE_LOOKUP_FAILED", "Failed to look up home quote", err)
		}
		if quote == nil {
			return NewBusinessError("HOME_POLICY_QUOTE_NOT_FOUND", "Home quote not found", ErrQuoteNotFound)
		}
		if !quote.Active {
			return NewBusinessError("HOME_POLICY_QUOTE_INACTIVE", "Home quote is no longer active", ErrQuoteAlreadyInactive)
		}

		now := utils.UTCNow()
		policy = &models.HomePolicy{
			QuoteID:        quote.ID,
			CustomerID:     quote.CustomerID,
			HomeID:         quote.HomeID,
			EffectiveDate:  effective,
			EndDate:        effective.AddDate(utils.PolicyTermYears, 0, 0),
			LiabilityLimit: quote.LiabilityLimit,
			BasePremium:    quote.BasePremium,
			Premium:        quote.Premium,
			TaxRate:        quote.TaxRate,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := f.homePolicyRepo.Save(txCtx, policy); err != nil {
			return NewBusinessError("HOME_POLICY_SAVE_FAILED", "Failed to save home policy", err)
		}

		if err := f.homeQuoteRepo.SetActive(txCtx, quote.ID, false); err != nil {
			return NewBusinessError("HOME_POLICY_QUOTE_DEACTIVATE_FAILED", "Failed to deactivate converted quote", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.IssueHomePolicyResponse{
		Message: "Home policy issued successfully",
		Policy:  ToHomePolicyItem(policy),
	}, nil
}

// GetAutoPolicy retrieves a single auto policy by ID
func (f *PolicyFlowImpl) GetAutoPolicy(ctx context.Context, policyID uint) (*dto.GetAutoPolicyResponse, error) {
	policy, err := f.autoPolicyRepo.ByID(ctx, policyID)
	if err != nil {
		return nil, NewBusinessError("AUTO_POLICY_LOOKUP_FAILED", "Failed to look up auto policy", err)
	}
	if policy == nil {
		return nil, NewBusinessError("AUTO_POLICY_NOT_FOUND", "Auto policy not found", ErrPolicyNotFound)
	}

	return &dto.GetAutoPolicyResponse{
		Message: "Auto policy retrieved successfully",
		Policy:  ToAutoPolicyItem(policy),
	}, nil
}

// GetHomePolicy retrieves a single home policy by ID
func (f *PolicyFlowImpl) GetHomePolicy(ctx context.Context, policyID uint) (*dto.GetHomePolicyResponse, error) {
	policy, err := f.homePolicyRepo.ByID(ctx, policyID)
	if err != nil {
		return nil, NewBusinessError("HOME_POLICY_LOOKUP_FAILED", "Failed to look up home policy", err)
	}
	if policy == nil {
		return nil, NewBusinessError("HOME_POLICY_NOT_FOUND", "Home policy not found", ErrPolicyNotFound)
	}

	return &dto.GetHomePolicyResponse{
		Message: "Home policy retrieved successfully",
		Policy:  ToHomePolicyItem(policy),
	}, nil
}

// ListAutoPolicies returns a customer's auto policies, newest first
func (f *PolicyFlowImpl) ListAutoPolicies(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListAutoPoliciesResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, customerID)
	if err != nil {
		return nil, NewBusinessError("AUTO_POLICY_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("AUTO_POLICY_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	var policies []*models.AutoPolicy
	if activeOnly {
		policies, err = f.autoPolicyRepo.ListActiveByCustomer(ctx, customerID)
	} else {
		policies, err = f.autoPolicyRepo.ListByCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, NewBusinessError("AUTO_POLICY_LIST_FAILED", "Failed to list auto policies", err)
	}

	items := make([]dto.AutoPolicyItem, 0, len(policies))
	for _, p := range policies {
		items = append(items, ToAutoPolicyItem(p))
	}

	return &dto.ListAutoPoliciesResponse{
		Message: "Auto policies retrieved successfully",
		Items:   items,
	}, nil
}

// ListHomePolicies returns a customer's home policies, newest first
func (f *PolicyFlowImpl) ListHomePolicies(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListHomePoliciesResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, customerID)
	if err != nil {
		return nil, NewBusinessError("HOME_POLICY_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("HOME_POLICY_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	var policies []*models.HomePolicy
	if activeOnly {
		policies, err = f.homePolicyRepo.ListActiveByCustomer(ctx, customerID)
	} else {
		policies, err = f.homePolicyRepo.ListByCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, NewBusinessError("HOME_POLICY_LIST_FAILED", "Failed to list home policies", err)
	}

	items := make([]dto.HomePolicyItem, 0, len(policies))
	for _, p := range policies {
		items = append(items, ToHomePolicyItem(p))
	}

	return &dto.ListHomePoliciesResponse{
		Message: "Home policies retrieved successfully",
		Items:   items,
	}, nil
}

// SetAutoPolicyStatus activates or cancels a policy. The caller may supply an
// explicit end date; otherwise cancellation moves the end date to the
// cancellation time so the coverage window reflects reality.
func (f *PolicyFlowImpl) SetAutoPolicyStatus(ctx context.Context, policyID uint, active bool, endDate *time.Time) (*dto.UpdatePolicyStatusResponse, error) {
	policy, err := f.autoPolicyRepo.ByID(ctx, policyID)
	if err != nil {
		return nil, NewBusinessError("AUTO_POLICY_LOOKUP_FAILED", "Failed to look up auto policy", err)
	}
	if policy == nil {
		return nil, NewBusinessError("AUTO_POLICY_NOT_FOUND", "Auto policy not found", ErrPolicyNotFound)
	}

	if endDate == nil && !active {
		endDate = utils.UTCNowPtr()
	}

	if err := f.autoPolicyRepo.UpdateStatus(ctx, policy.ID, active, endDate); err != nil {
		return nil, NewBusinessError("AUTO_POLICY_STATUS_UPDATE_FAILED", "Failed to update auto policy status", err)
	}

	return &dto.UpdatePolicyStatusResponse{Message: "Auto policy status updated successfully"}, nil
}

// SetHomePolicyStatus activates or cancels a policy.
func (f *PolicyFlowImpl) SetHomePolicyStatus(ctx context.Context, policyID uint, active bool, endDate *time.Time) (*dto.UpdatePolicyStatusResponse, error) {
	policy, err := f.homePolicyRepo.ByID(ctx, policyID)
	if err != nil {
		return nil, NewBusinessError("HOME_POLICY_LOOKUP_FAILED", "Failed to look up home policy", err)
	}
	if policy == nil {
		return nil, NewBusinessError("HOME_POLICY_NOT_FOUND", "Home policy not found", ErrPolicyNotFound)
	}

	if endDate == nil && !active {
		endDate = utils.UTCNowPtr()
	}

	if err := f.homePolicyRepo.UpdateStatus(ctx, policy.ID, active, endDate); err != nil {
		return nil, NewBusinessError("HOME_POLICY_STATUS_UPDATE_FAILED", "Failed to update home policy status", err)
	}

	return &dto.UpdatePolicyStatusResponse{Message: "Home policy status updated successfully"}, nil
}

// DeactivateExpiredPolicies flips the active flag off for every policy whose
// term ended before asOf. It returns how many policies were deactivated.
func (f *PolicyFlowImpl) DeactivateExpiredPolicies(ctx context.Context, asOf time.Time) (int, error) {
	deactivated := 0

	autoPolicies, err := f.autoPolicyRepo.ListExpiredActive(ctx, asOf)
	if err != nil {
		return 0, NewBusinessError("AUTO_POLICY_EXPIRY_LIST_FAILED", "Failed to list expired auto policies", err)
	}
	for _, p := range autoPolicies {
		if err := f.autoPolicyRepo.UpdateStatus(ctx, p.ID, false, nil); err != nil {
			return deactivated, NewBusinessError("AUTO_POLICY_EXPIRY_UPDATE_FAILED", "Failed to deactivate expired auto policy", err)
		}
		deactivated++
	}

	homePolicies, err := f.homePolicyRepo.ListExpiredActive(ctx, asOf)
	if err != nil {
		return deactivated, NewBusinessError("HOME_POLICY_EXPIRY_LIST_FAILED", "Failed to list expired home policies", err)
	}
	for _, p := range homePolicies {
		if err := f.homePolicyRepo.UpdateStatus(ctx, p.ID, false, nil); err != nil {
			return deactivated, NewBusinessError("HOME_POLICY_EXPIRY_UPDATE_FAILED", "Failed to deactivate expired home policy", err)
		}
		deactivated++
	}

	return deactivated, nil
}
