package businessflow

import (
	"context"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
)

// QuoteFlow handles retrieval and lifecycle of persisted quotes.
type QuoteFlow interface {
	GetAutoQuote(ctx context.Context, quoteID uint) (*dto.GetAutoQuoteResponse, error)
	GetHomeQuote(ctx context.Context, quoteID uint) (*dto.GetHomeQuoteResponse, error)
	ListAutoQuotes(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListAutoQuotesResponse, error)
	ListHomeQuotes(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListHomeQuotesResponse, error)
	DeactivateAutoQuote(ctx context.Context, quoteID uint) (*dto.DeactivateQuoteResponse, error)
	DeactivateHomeQuote(ctx context.Context, quoteID uint) (*dto.DeactivateQuoteResponse, error)
}

type QuoteFlowImpl struct {
	customerRepo  repository.CustomerRepository
	autoQuoteRepo repository.AutoQuoteRepository
	homeQuoteRepo repository.HomeQuoteRepository
}

// NewQuoteFlow creates a new quote flow instance
func NewQuoteFlow(
	customerRepo repository.CustomerRepository,
	autoQuoteRepo repository.AutoQuoteRepository,
	homeQuoteRepo repository.HomeQuoteRepository,
) QuoteFlow {
	return &QuoteFlowImpl{
		customerRepo:  customerRepo,
		autoQuoteRepo: autoQuoteRepo,
		homeQuoteRepo: homeQuoteRepo,
	}
}

// GetAutoQuote retrieves a single auto quote by ID
func (f *QuoteFlowImpl) GetAutoQuote(ctx context.Context, quoteID uint) (*dto.GetAutoQuoteResponse, error) {
	quote, err := f.autoQuoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_LOOKUP_FAILED", "Failed to look up auto quote", err)
	}
	if quote == nil {
		return nil, NewBusinessError("AUTO_QUOTE_NOT_FOUND", "Auto quote not found", ErrQuoteNotFound)
	}

	return &dto.GetAutoQuoteResponse{
		Message: "Auto quote retrieved successfully",
		Quote:   ToAutoQuoteItem(quote),
	}, nil
}

// GetHomeQuote retrieves a single home quote by ID
func (f *QuoteFlowImpl) GetHomeQuote(ctx context.Context, quoteID uint) (*dto.GetHomeQuoteResponse, error) {
	quote, err := f.homeQuoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_LOOKUP_FAILED", "Failed to look up home quote", err)
	}
	if quote == nil {
		return nil, NewBusinessError("HOME_QUOTE_NOT_FOUND", "Home quote not found", ErrQuoteNotFound)
	}

	return &dto.GetHomeQuoteResponse{
		Message: "Home quote retrieved successfully",
		Quote:   ToHomeQuoteItem(quote),
	}, nil
}

// ListAutoQuotes returns a customer's auto quotes, newest first
func (f *QuoteFlowImpl) ListAutoQuotes(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListAutoQuotesResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, customerID)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("AUTO_QUOTE_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	var quotes []*models.AutoQuote
	if activeOnly {
		quotes, err = f.autoQuoteRepo.ListActiveByCustomer(ctx, customerID)
	} else {
		quotes, err = f.autoQuoteRepo.ListByCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_LIST_FAILED", "Failed to list auto quotes", err)
	}

	items := make([]dto.AutoQuoteItem, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, ToAutoQuoteItem(q))
	}

	return &dto.ListAutoQuotesResponse{
		Message: "Auto quotes retrieved successfully",
		Items:   items,
	}, nil
}

// ListHomeQuotes returns a customer's home quotes, newest first
func (f *QuoteFlowImpl) ListHomeQuotes(ctx context.Context, customerID uint, activeOnly bool) (*dto.ListHomeQuotesResponse, error) {
	customer, err := f.customerRepo.ByID(ctx, customerID)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_CUSTOMER_LOOKUP_FAILED", "Failed to look up customer", err)
	}
	if customer == nil {
		return nil, NewBusinessError("HOME_QUOTE_CUSTOMER_NOT_FOUND", "Customer not found", ErrCustomerNotFound)
	}

	var quotes []*models.HomeQuote
	if activeOnly {
		quotes, err = f.homeQuoteRepo.ListActiveByCustomer(ctx, customerID)
	} else {
		quotes, err = f.homeQuoteRepo.ListByCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_LIST_FAILED", "Failed to list home quotes", err)
	}

	items := make([]dto.HomeQuoteItem, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, ToHomeQuoteItem(q))
	}

	return &dto.ListHomeQuotesResponse{
		Message: "Home quotes retrieved successfully",
		Items:   items,
	}, nil
}

// DeactivateAutoQuote retires a quote without converting it. Deactivation is
// idempotent in effect but a second call reports the quote as already
// inactive.
func (f *QuoteFlowImpl) DeactivateAutoQuote(ctx context.Context, quoteID uint) (*dto.DeactivateQuoteResponse, error) {
	quote, err := f.autoQuoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_LOOKUP_FAILED", "Failed to look up auto quote", err)
	}
	if quote == nil {
		return nil, NewBusinessError("AUTO_QUOTE_NOT_FOUND", "Auto quote not found", ErrQuoteNotFound)
	}
	if !quote.Active {
		return nil, NewBusinessError("AUTO_QUOTE_ALREADY_INACTIVE", "Auto quote is already inactive", ErrQuoteAlreadyInactive)
	}

	if err := f.autoQuoteRepo.SetActive(ctx, quote.ID, false); err != nil {
		return nil, NewBusinessError("AUTO_QUOTE_DEACTIVATE_FAILED", "Failed to deactivate auto quote", err)
	}

	return &dto.DeactivateQuoteResponse{Message: "Auto quote deactivated successfully"}, nil
}

// DeactivateHomeQuote retires a quote without converting it.
func (f *QuoteFlowImpl) DeactivateHomeQuote(ctx context.Context, quoteID uint) (*dto.DeactivateQuoteResponse, error) {
	quote, err := f.homeQuoteRepo.ByID(ctx, quoteID)
	if err != nil {
		return nil, NewBusinessError("HOME_QUOTE_LOOKUP_FAILED", "Failed to look up home quote", err)
	}
	if quote == nil {
		return nil, NewBusinessError("HOME_QUOTE_NOT_FOUND", "Home quote not found", ErrQuoteNotFound)
	}
	if !quote.Active {
		return nil, NewBusinessError("HOME_QUOTE_ALREADY_INACTIVE", "Home quote is already inactive", ErrQuoteAlreadyInactive)
	}

	if err := f.homeQuoteRepo.SetActive(ctx, quote.ID, false); err != nil {
		return nil, NewBusinessError("HOME_QUOTE_DEACTIVATE_FAILED", "Failed to deactivate home quote", err)
	}

	return &dto.DeactivateQuoteResponse{Message: "Home quote deactivated successfully"}, nil
}
