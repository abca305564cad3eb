package dto

// GenerateAutoQuoteRequest represents the payload to rate one vehicle and persist the result as a quote.
// PackagedQuote marks a combined auto+home purchase so the bundling discount
// applies even before any home policy exists.
type GenerateAutoQuoteRequest struct {
	CustomerID    uint `json:"customer_id" validate:"required"`
	VehicleID     uint `json:"vehicle_id" validate:"required"`
	PackagedQuote bool `json:"packaged_quote"`
}

// GenerateHomeQuoteRequest represents the payload to rate one home and persist the result as a quote.
type GenerateHomeQuoteRequest struct {
	CustomerID     uint `json:"customer_id" validate:"required"`
	HomeID         uint `json:"home_id" validate:"required"`
	LiabilityLimit int  `json:"liability_limit" validate:"required,oneof=1000000 2000000"`
	PackagedQuote  bool `json:"packaged_quote"`
}

type AutoQuoteItem struct {
	ID             uint    `json:"id"`
	UUID           string  `json:"uuid"`
	CustomerID     uint    `json:"customer_id"`
	VehicleID      uint    `json:"vehicle_id"`
	GenerationDate string  `json:"generation_date"`
	BasePremium    int     `json:"base_premium"`
	Premium        float64 `json:"premium"`
	TaxRate        float64 `json:"tax_rate"`
	Active         bool    `json:"active"`
}

type HomeQuoteItem struct {
	ID             uint    `json:"id"`
	UUID           string  `json:"uuid"`
	CustomerID     uint    `json:"customer_id"`
	HomeID         uint    `json:"home_id"`
	GenerationDate string  `json:"generation_date"`
	LiabilityLimit int     `json:"liability_limit"`
	BasePremium    int     `json:"base_premium"`
	Premium        float64 `json:"premium"`
	TaxRate        float64 `json:"tax_rate"`
	Active         bool    `json:"active"`
}

type GenerateAutoQuoteResponse struct {
	Message string        `json:"message"`
	Quote   AutoQuoteItem `json:"quote"`
}

type GenerateHomeQuoteResponse struct {
	Message string        `json:"message"`
	Quote   HomeQuoteItem `json:"quote"`
}

type GetAutoQuoteResponse struct {
	Message string        `json:"message"`
	Quote   AutoQuoteItem `json:"quote"`
}

type GetHomeQuoteResponse struct {
	Message string        `json:"message"`
	Quote   HomeQuoteItem `json:"quote"`
}

type ListAutoQuotesResponse struct {
	Message string          `json:"message"`
	Items   []AutoQuoteItem `json:"items"`
}

type ListHomeQuotesResponse struct {
	Message string          `json:"message"`
	Items   []HomeQuoteItem `json:"items"`
}

type DeactivateQuoteResponse struct {
	Message string `json:"message"`
}
