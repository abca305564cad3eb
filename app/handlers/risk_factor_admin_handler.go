package handlers

import (
	"context"
	"log"
	"time"

	"github.com/amirphl/Simorgh/app/dto"
	businessflow "github.com/amirphl/Simorgh/business_flow"
	"github.com/amirphl/Simorgh/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// RiskFactorAdminHandlerInterface defines admin endpoints for the risk factor table.
type RiskFactorAdminHandlerInterface interface {
	GetRiskFactors(c fiber.Ctx) error
	ReplaceRiskFactors(c fiber.Ctx) error
}

// RiskFactorAdminHandler implements admin endpoints for the risk factor table.
type RiskFactorAdminHandler struct {
	flow      businessflow.RiskFactorFlow
	validator *validator.Validate
}

func NewRiskFactorAdminHandler(flow businessflow.RiskFactorFlow) RiskFactorAdminHandlerInterface {
	return &RiskFactorAdminHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

func (h *RiskFactorAdminHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

func (h *RiskFactorAdminHandler) SuccessResponse(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// GetRiskFactors returns the risk factor table in effect.
// @Summary Get Risk Factors (Admin)
// @Description Retrieve the full risk factor table currently used for rating
// @Tags Admin Risk Factors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminGetRiskFactorsResponse}
// @Failure 500 {object} dto.APIResponse "Load failed"
// @Router /api/v1/admin/risk-factors [get]
func (h *RiskFactorAdminHandler) GetRiskFactors(c fiber.Ctx) error {
	res, err := h.flow.AdminGetRiskFactors(h.createRequestContext(c, "/api/v1/admin/risk-factors"))
	if err != nil {
		log.Println("Get risk factors failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Get risk factors failed", "RISK_FACTORS_GET_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Risk factors retrieved", res)
}

// ReplaceRiskFactors replaces the whole risk factor table (latest row wins).
// @Summary Replace Risk Factors (Admin)
// @Description Insert a complete new risk factor table; existing quotes and policies keep their stored premiums
// @Tags Admin Risk Factors
// @Accept json
// @Produce json
// @Param request body dto.AdminReplaceRiskFactorsRequest true "Complete risk factor table"
// @Success 200 {object} dto.APIResponse{data=dto.AdminReplaceRiskFactorsResponse}
// @Failure 400 {object} dto.APIResponse "Incomplete or invalid table"
// @Failure 500 {object} dto.APIResponse "Replace failed"
// @Router /api/v1/admin/risk-factors [put]
func (h *RiskFactorAdminHandler) ReplaceRiskFactors(c fiber.Ctx) error {
	var req dto.AdminReplaceRiskFactorsRequest
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

	res, err := h.flow.AdminReplaceRiskFactors(h.createRequestContext(c, "/api/v1/admin/risk-factors"), &req)
	if err != nil {
		if businessflow.IsRiskFactorsInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Risk factor table must be complete", "RISK_FACTORS_INVALID", nil)
		}
		log.Println("Replace risk factors failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Replace risk factors failed", "RISK_FACTORS_REPLACE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Risk factors replaced", res)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *RiskFactorAdminHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *RiskFactorAdminHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
