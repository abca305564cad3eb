package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/amirphl/Simorgh/app/dto"
	businessflow "github.com/amirphl/Simorgh/business_flow"
	"github.com/amirphl/Simorgh/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// QuoteHandlerInterface defines quote generation and lifecycle endpoints.
type QuoteHandlerInterface interface {
	GenerateAutoQuote(c fiber.Ctx) error
	GenerateHomeQuote(c fiber.Ctx) error
	GetAutoQuote(c fiber.Ctx) error
	GetHomeQuote(c fiber.Ctx) error
	ListAutoQuotes(c fiber.Ctx) error
	ListHomeQuotes(c fiber.Ctx) error
	DeactivateAutoQuote(c fiber.Ctx) error
	DeactivateHomeQuote(c fiber.Ctx) error
}

// QuoteHandler implements quote endpoints.
type QuoteHandler struct {
	ratingFlow businessflow.RatingFlow
	quoteFlow  businessflow.QuoteFlow
	validator  *validator.Validate
}

func NewQuoteHandler(ratingFlow businessflow.RatingFlow, quoteFlow businessflow.QuoteFlow) QuoteHandlerInterface {
	return &QuoteHandler{
		ratingFlow: ratingFlow,
		quoteFlow:  quoteFlow,
		validator:  validator.New(),
	}
}

func (h *QuoteHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

func (h *QuoteHandler) SuccessResponse(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// GenerateAutoQuote rates a vehicle and persists the result as a quote.
// @Summary Generate Auto Quote
// @Description Rate one vehicle for one customer and persist the result as an active quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.GenerateAutoQuoteRequest true "Auto quote payload"
// @Success 201 {object} dto.APIResponse{data=dto.GenerateAutoQuoteResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Customer or vehicle not found"
// @Failure 500 {object} dto.APIResponse "Quote generation failed"
// @Router /api/v1/quotes/auto [post]
func (h *QuoteHandler) GenerateAutoQuote(c fiber.Ctx) error {
	var req dto.GenerateAutoQuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, e := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(e))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	res, err := h.ratingFlow.GenerateAutoQuote(h.createRequestContext(c, "/api/v1/quotes/auto"), &req)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		if businessflow.IsVehicleNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Vehicle not found for customer", "VEHICLE_NOT_FOUND", nil)
		}
		log.Println("Generate auto quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Generate auto quote failed", "AUTO_QUOTE_GENERATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Auto quote generated", res)
}

// GenerateHomeQuote rates a home and persists the result as a quote.
// @Summary Generate Home Quote
// @Description Rate one home for one customer and persist the result as an active quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.GenerateHomeQuoteRequest true "Home quote payload"
// @Success 201 {object} dto.APIResponse{data=dto.GenerateHomeQuoteResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Customer or home not found"
// @Failure 500 {object} dto.APIResponse "Quote generation failed"
// @Router /api/v1/quotes/home [post]
func (h *QuoteHandler) GenerateHomeQuote(c fiber.Ctx) error {
	var req dto.GenerateHomeQuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, e := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(e))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	res, err := h.ratingFlow.GenerateHomeQuote(h.createRequestContext(c, "/api/v1/quotes/home"), &req)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		if businessflow.IsHomeNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home not found for customer", "HOME_NOT_FOUND", nil)
		}
		if businessflow.IsLiabilityLimitInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported liability limit", "LIABILITY_LIMIT_INVALID", nil)
		}
		log.Println("Generate home quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Generate home quote failed", "HOME_QUOTE_GENERATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Home quote generated", res)
}

// GetAutoQuote returns a single auto quote.
// @Summary Get Auto Quote
// @Tags Quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetAutoQuoteResponse}
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Router /api/v1/quotes/auto/{id} [get]
func (h *QuoteHandler) GetAutoQuote(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quote id", "INVALID_QUOTE_ID", nil)
	}

	res, err := h.quoteFlow.GetAutoQuote(h.createRequestContext(c, "/api/v1/quotes/auto/"+idStr), uint(id))
	if err != nil {
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Auto quote not found", "AUTO_QUOTE_NOT_FOUND", nil)
		}
		log.Println("Get auto quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Get auto quote failed", "AUTO_QUOTE_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto quote retrieved", res)
}

// GetHomeQuote returns a single home quote.
// @Summary Get Home Quote
// @Tags Quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetHomeQuoteResponse}
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Router /api/v1/quotes/home/{id} [get]
func (h *QuoteHandler) GetHomeQuote(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quote id", "INVALID_QUOTE_ID", nil)
	}

	res, err := h.quoteFlow.GetHomeQuote(h.createRequestContext(c, "/api/v1/quotes/home/"+idStr), uint(id))
	if err != nil {
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home quote not found", "HOME_QUOTE_NOT_FOUND", nil)
		}
		log.Println("Get home quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Get home quote failed", "HOME_QUOTE_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home quote retrieved", res)
}

// ListAutoQuotes returns a customer's auto quotes.
// @Summary List Auto Quotes
// @Tags Quotes
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param active query bool false "Only active quotes"
// @Success 200 {object} dto.APIResponse{data=dto.ListAutoQuotesResponse}
// @Failure 404 {object} dto.APIResponse "Customer not found"
// @Router /api/v1/customers/{customer_id}/quotes/auto [get]
func (h *QuoteHandler) ListAutoQuotes(c fiber.Ctx) error {
	cidStr := c.Params("customer_id")
	cid, err := strconv.ParseUint(cidStr, 10, 64)
	if err != nil || cid == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", "INVALID_CUSTOMER_ID", nil)
	}
	activeOnly := c.Query("active") == "true"

	res, err := h.quoteFlow.ListAutoQuotes(h.createRequestContext(c, "/api/v1/customers/"+cidStr+"/quotes/auto"), uint(cid), activeOnly)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		log.Println("List auto quotes failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "List auto quotes failed", "AUTO_QUOTE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto quotes retrieved", res)
}

// ListHomeQuotes returns a customer's home quotes.
// @Summary List Home Quotes
// @Tags Quotes
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param active query bool false "Only active quotes"
// @Success 200 {object} dto.APIResponse{data=dto.ListHomeQuotesResponse}
// @Failure 404 {object} dto.APIResponse "Customer not found"
// @Router /api/v1/customers/{customer_id}/quotes/home [get]
func (h *QuoteHandler) ListHomeQuotes(c fiber.Ctx) error {
	cidStr := c.Params("customer_id")
	cid, err := strconv.ParseUint(cidStr, 10, 64)
	if err != nil || cid == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", "INVALID_CUSTOMER_ID", nil)
	}
	activeOnly := c.Query("active") == "true"

	res, err := h.quoteFlow.ListHomeQuotes(h.createRequestContext(c, "/api/v1/customers/"+cidStr+"/quotes/home"), uint(cid), activeOnly)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		log.Println("List home quotes failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "List home quotes failed", "HOME_QUOTE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home quotes retrieved", res)
}

// DeactivateAutoQuote retires an active auto quote.
// @Summary Deactivate Auto Quote
// @Tags Quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeactivateQuoteResponse}
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Failure 409 {object} dto.APIResponse "Quote already inactive"
// @Router /api/v1/quotes/auto/{id}/deactivate [post]
func (h *QuoteHandler) DeactivateAutoQuote(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quote id", "INVALID_QUOTE_ID", nil)
	}

	res, err := h.quoteFlow.DeactivateAutoQuote(h.createRequestContext(c, "/api/v1/quotes/auto/"+idStr+"/deactivate"), uint(id))
	if err != nil {
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Auto quote not found", "AUTO_QUOTE_NOT_FOUND", nil)
		}
		if businessflow.IsQuoteAlreadyInactive(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Auto quote is already inactive", "AUTO_QUOTE_ALREADY_INACTIVE", nil)
		}
		log.Println("Deactivate auto quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Deactivate auto quote failed", "AUTO_QUOTE_DEACTIVATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto quote deactivated", res)
}

// DeactivateHomeQuote retires an active home quote.
// @Summary Deactivate Home Quote
// @Tags Quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeactivateQuoteResponse}
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Failure 409 {object} dto.APIResponse "Quote already inactive"
// @Router /api/v1/quotes/home/{id}/deactivate [post]
func (h *QuoteHandler) DeactivateHomeQuote(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid quote id", "INVALID_QUOTE_ID", nil)
	}

	res, err := h.quoteFlow.DeactivateHomeQuote(h.createRequestContext(c, "/api/v1/quotes/home/"+idStr+"/deactivate"), uint(id))
	if err != nil {
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home quote not found", "HOME_QUOTE_NOT_FOUND", nil)
		}
		if businessflow.IsQuoteAlreadyInactive(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Home quote is already inactive", "HOME_QUOTE_ALREADY_INACTIVE", nil)
		}
		log.Println("Deactivate home quote failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Deactivate home quote failed", "HOME_QUOTE_DEACTIVATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home quote deactivated", res)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *QuoteHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *QuoteHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
