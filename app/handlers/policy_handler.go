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

// PolicyHandlerInterface defines policy issuance and lifecycle endpoints.
type PolicyHandlerInterface interface {
	IssueAutoPolicy(c fiber.Ctx) error
	IssueHomePolicy(c fiber.Ctx) error
	GetAutoPolicy(c fiber.Ctx) error
	GetHomePolicy(c fiber.Ctx) error
	ListAutoPolicies(c fiber.Ctx) error
	ListHomePolicies(c fiber.Ctx) error
	UpdateAutoPolicyStatus(c fiber.Ctx) error
	UpdateHomePolicyStatus(c fiber.Ctx) error
}

// PolicyHandler implements policy endpoints.
type PolicyHandler struct {
	policyFlow businessflow.PolicyFlow
	validator  *validator.Validate
}

func NewPolicyHandler(policyFlow businessflow.PolicyFlow) PolicyHandlerInterface {
	return &PolicyHandler{
		policyFlow: policyFlow,
		validator:  validator.New(),
	}
}

func (h *PolicyHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

func (h *PolicyHandler) SuccessResponse(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// IssueAutoPolicy converts an active auto quote into a policy.
// @Summary Issue Auto Policy
// @Description Convert an active auto quote into a binding policy; the source quote is deactivated atomically
// @Tags Policies
// @Accept json
// @Produce json
// @Param request body dto.IssueAutoPolicyRequest true "Issuance payload"
// @Success 201 {object} dto.APIResponse{data=dto.IssueAutoPolicyResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Failure 409 {object} dto.APIResponse "Quote no longer active"
// @Router /api/v1/policies/auto [post]
func (h *PolicyHandler) IssueAutoPolicy(c fiber.Ctx) error {
	var req dto.IssueAutoPolicyRequest
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

	res, err := h.policyFlow.IssueAutoPolicy(h.createRequestContext(c, "/api/v1/policies/auto"), &req)
	if err != nil {
		if businessflow.IsEffectiveDateInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Effective date must be YYYY-MM-DD", "INVALID_EFFECTIVE_DATE", nil)
		}
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Auto quote not found", "AUTO_QUOTE_NOT_FOUND", nil)
		}
		if businessflow.IsQuoteAlreadyInactive(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Auto quote is no longer active", "AUTO_QUOTE_INACTIVE", nil)
		}
		log.Println("Issue auto policy failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Issue auto policy failed", "AUTO_POLICY_ISSUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Auto policy issued", res)
}

// IssueHomePolicy converts an active home quote into a policy.
// @Summary Issue Home Policy
// @Description Convert an active home quote into a binding policy; the source quote is deactivated atomically
// @Tags Policies
// @Accept json
// @Produce json
// @Param request body dto.IssueHomePolicyRequest true "Issuance payload"
// @Success 201 {object} dto.APIResponse{data=dto.IssueHomePolicyResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Quote not found"
// @Failure 409 {object} dto.APIResponse "Quote no longer active"
// @Router /api/v1/policies/home [post]
func (h *PolicyHandler) IssueHomePolicy(c fiber.Ctx) error {
	var req dto.IssueHomePolicyRequest
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

	res, err := h.policyFlow.IssueHomePolicy(h.createRequestContext(c, "/api/v1/policies/home"), &req)
	if err != nil {
		if businessflow.IsEffectiveDateInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Effective date must be YYYY-MM-DD", "INVALID_EFFECTIVE_DATE", nil)
		}
		if businessflow.IsQuoteNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home quote not found", "HOME_QUOTE_NOT_FOUND", nil)
		}
		if businessflow.IsQuoteAlreadyInactive(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Home quote is no longer active", "HOME_QUOTE_INACTIVE", nil)
		}
		log.Println("Issue home policy failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Issue home policy failed", "HOME_POLICY_ISSUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Home policy issued", res)
}

// GetAutoPolicy returns a single auto policy.
// @Summary Get Auto Policy
// @Tags Policies
// @Produce json
// @Param id path int true "Policy ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetAutoPolicyResponse}
// @Failure 404 {object} dto.APIResponse "Policy not found"
// @Router /api/v1/policies/auto/{id} [get]
func (h *PolicyHandler) GetAutoPolicy(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid policy id", "INVALID_POLICY_ID", nil)
	}

	res, err := h.policyFlow.GetAutoPolicy(h.createRequestContext(c, "/api/v1/policies/auto/"+idStr), uint(id))
	if err != nil {
		if businessflow.IsPolicyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Auto policy not found", "AUTO_POLICY_NOT_FOUND", nil)
		}
		log.Println("Get auto policy failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Get auto policy failed", "AUTO_POLICY_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto policy retrieved", res)
}

// GetHomePolicy returns a single home policy.
// @Summary Get Home Policy
// @Tags Policies
// @Produce json
// @Param id path int true "Policy ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetHomePolicyResponse}
// @Failure 404 {object} dto.APIResponse "Policy not found"
// @Router /api/v1/policies/home/{id} [get]
func (h *PolicyHandler) GetHomePolicy(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid policy id", "INVALID_POLICY_ID", nil)
	}

	res, err := h.policyFlow.GetHomePolicy(h.createRequestContext(c, "/api/v1/policies/home/"+idStr), uint(id))
	if err != nil {
		if businessflow.IsPolicyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home policy not found", "HOME_POLICY_NOT_FOUND", nil)
		}
		log.Println("Get home policy failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Get home policy failed", "HOME_POLICY_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home policy retrieved", res)
}

// ListAutoPolicies returns a customer's auto policies.
// @Summary List Auto Policies
// @Tags Policies
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param active query bool false "Only in-force policies"
// @Success 200 {object} dto.APIResponse{data=dto.ListAutoPoliciesResponse}
// @Failure 404 {object} dto.APIResponse "Customer not found"
// @Router /api/v1/customers/{customer_id}/policies/auto [get]
func (h *PolicyHandler) ListAutoPolicies(c fiber.Ctx) error {
	cidStr := c.Params("customer_id")
	cid, err := strconv.ParseUint(cidStr, 10, 64)
	if err != nil || cid == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", "INVALID_CUSTOMER_ID", nil)
	}
	activeOnly := c.Query("active") == "true"

	res, err := h.policyFlow.ListAutoPolicies(h.createRequestContext(c, "/api/v1/customers/"+cidStr+"/policies/auto"), uint(cid), activeOnly)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		log.Println("List auto policies failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "List auto policies failed", "AUTO_POLICY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto policies retrieved", res)
}

// ListHomePolicies returns a customer's home policies.
// @Summary List Home Policies
// @Tags Policies
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param active query bool false "Only in-force policies"
// @Success 200 {object} dto.APIResponse{data=dto.ListHomePoliciesResponse}
// @Failure 404 {object} dto.APIResponse "Customer not found"
// @Router /api/v1/customers/{customer_id}/policies/home [get]
func (h *PolicyHandler) ListHomePolicies(c fiber.Ctx) error {
	cidStr := c.Params("customer_id")
	cid, err := strconv.ParseUint(cidStr, 10, 64)
	if err != nil || cid == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid customer id", "INVALID_CUSTOMER_ID", nil)
	}
	activeOnly := c.Query("active") == "true"

	res, err := h.policyFlow.ListHomePolicies(h.createRequestContext(c, "/api/v1/customers/"+cidStr+"/policies/home"), uint(cid), activeOnly)
	if err != nil {
		if businessflow.IsCustomerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer not found", "CUSTOMER_NOT_FOUND", nil)
		}
		log.Println("List home policies failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "List home policies failed", "HOME_POLICY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home policies retrieved", res)
}

// UpdateAutoPolicyStatus activates or cancels an auto policy.
// @Summary Update Auto Policy Status
// @Tags Policies
// @Accept json
// @Produce json
// @Param id path int true "Policy ID"
// @Param request body dto.UpdatePolicyStatusRequest true "Status payload"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatePolicyStatusResponse}
// @Failure 404 {object} dto.APIResponse "Policy not found"
// @Router /api/v1/policies/auto/{id}/status [patch]
func (h *PolicyHandler) UpdateAutoPolicyStatus(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid policy id", "INVALID_POLICY_ID", nil)
	}

	var req dto.UpdatePolicyStatusRequest
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

	endDate, parseErr := parseOptionalDate(req.EndDate)
	if parseErr != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "End date must be YYYY-MM-DD", "INVALID_END_DATE", nil)
	}

	res, err := h.policyFlow.SetAutoPolicyStatus(h.createRequestContext(c, "/api/v1/policies/auto/"+idStr+"/status"), uint(id), *req.Active, endDate)
	if err != nil {
		if businessflow.IsPolicyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Auto policy not found", "AUTO_POLICY_NOT_FOUND", nil)
		}
		log.Println("Update auto policy status failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Update auto policy status failed", "AUTO_POLICY_STATUS_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Auto policy status updated", res)
}

// UpdateHomePolicyStatus activates or cancels a home policy.
// @Summary Update Home Policy Status
// @Tags Policies
// @Accept json
// @Produce json
// @Param id path int true "Policy ID"
// @Param request body dto.UpdatePolicyStatusRequest true "Status payload"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatePolicyStatusResponse}
// @Failure 404 {object} dto.APIResponse "Policy not found"
// @Router /api/v1/policies/home/{id}/status [patch]
func (h *PolicyHandler) UpdateHomePolicyStatus(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid policy id", "INVALID_POLICY_ID", nil)
	}

	var req dto.UpdatePolicyStatusRequest
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

	endDate, parseErr := parseOptionalDate(req.EndDate)
	if parseErr != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "End date must be YYYY-MM-DD", "INVALID_END_DATE", nil)
	}

	res, err := h.policyFlow.SetHomePolicyStatus(h.createRequestContext(c, "/api/v1/policies/home/"+idStr+"/status"), uint(id), *req.Active, endDate)
	if err != nil {
		if businessflow.IsPolicyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Home policy not found", "HOME_POLICY_NOT_FOUND", nil)
		}
		log.Println("Update home policy status failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Update home policy status failed", "HOME_POLICY_STATUS_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Home policy status updated", res)
}

// parseOptionalDate parses a YYYY-MM-DD date when present
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *PolicyHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *PolicyHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
