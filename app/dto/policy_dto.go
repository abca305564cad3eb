package dto

// IssueAutoPolicyRequest represents the payload to convert an active auto quote into a policy.
// EffectiveDate is the coverage start chosen by the caller, formatted YYYY-MM-DD.
type IssueAutoPolicyRequest struct {
	QuoteID       uint   `json:"quote_id" validate:"required"`
	EffectiveDate string `json:"effective_date" validate:"required"`
}

// IssueHomePolicyRequest represents the payload to convert an active home quote into a policy.
type IssueHomePolicyRequest struct {
	QuoteID       uint   `json:"quote_id" validate:"required"`
	EffectiveDate string `json:"effective_date" validate:"required"`
}

// UpdatePolicyStatusRequest represents the payload to activate or cancel a policy.
// EndDate optionally overrides the coverage end, formatted YYYY-MM-DD; when
// omitted, cancellation closes the coverage window at the cancellation time.
type UpdatePolicyStatusRequest struct {
	Active  *bool   `json:"active" validate:"required"`
	EndDate *string `json:"end_date,omitempty"`
}

type AutoPolicyItem struct {
	ID            uint    `json:"id"`
	UUID          string  `json:"uuid"`
	QuoteID       uint    `json:"quote_id"`
	CustomerID    uint    `json:"customer_id"`
	VehicleID     uint    `json:"vehicle_id"`
	EffectiveDate string  `json:"effective_date"`
	EndDate       string  `json:"end_date"`
	BasePremium   int     `json:"base_premium"`
	Premium       float64 `json:"premium"`
	TaxRate       float64 `json:"tax_rate"`
	Active        bool    `json:"active"`
}

type HomePolicyItem struct {
	ID             uint    `json:"id"`
	UUID           string  `json:"uuid"`
	QuoteID        uint    `json:"quote_id"`
	CustomerID     uint    `json:"customer_id"`
	HomeID         uint    `json:"home_id"`
	EffectiveDate  string  `json:"effective_date"`
	EndDate        string  `json:"end_date"`
	LiabilityLimit int     `json:"liability_limit"`
	BasePremium    int     `json:"base_premium"`
	Premium        float64 `json:"premium"`
	TaxRate        float64 `json:"tax_rate"`
	Active         bool    `json:"active"`
}

type IssueAutoPolicyResponse struct {
	Message string         `json:"message"`
	Policy  AutoPolicyItem `json:"policy"`
}

type IssueHomePolicyResponse struct {
	Message string         `json:"message"`
	Policy  HomePolicyItem `json:"policy"`
}

type GetAutoPolicyResponse struct {
	Message string         `json:"message"`
	Policy  AutoPolicyItem `json:"policy"`
}

type GetHomePolicyResponse struct {
	Message string         `json:"message"`
	Policy  HomePolicyItem `json:"policy"`
}

type ListAutoPoliciesResponse struct {
	Message string           `json:"message"`
	Items   []AutoPolicyItem `json:"items"`
}

type ListHomePoliciesResponse struct {
	Message string           `json:"message"`
	Items   []HomePolicyItem `json:"items"`
}

type UpdatePolicyStatusResponse struct {
	Message string `json:"message"`
}
