package handlers

import (
	"context"
	"log"
	"time"

	"github.com/amirphl/Simorgh/app/dto"
	businessflow "github.com/amirphl/Simorgh/business_flow"
	"github.com/amirphl/Simorgh/utils"
	"github.com/gofiber/fiber/v3"
)

// ReportAdminHandlerInterface defines admin reporting endpoints.
type ReportAdminHandlerInterface interface {
	DownloadPolicies(c fiber.Ctx) error
}

// ReportAdminHandler implements admin reporting endpoints.
type ReportAdminHandler struct {
	flow businessflow.ReportFlow
}

func NewReportAdminHandler(flow businessflow.ReportFlow) ReportAdminHandlerInterface {
	return &ReportAdminHandler{flow: flow}
}

func (h *ReportAdminHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

// DownloadPolicies streams the policy book as an Excel workbook.
// @Summary Download Policies (Admin)
// @Description Export every auto and home policy as an Excel workbook with one sheet per line
// @Tags Admin Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} dto.APIResponse "Export failed"
// @Router /api/v1/admin/reports/policies [get]
func (h *ReportAdminHandler) DownloadPolicies(c fiber.Ctx) error {
	filename, data, err := h.flow.DownloadPoliciesExcel(h.createRequestContext(c, "/api/v1/admin/reports/policies"))
	if err != nil {
		log.Println("Admin download policies failed:", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate Excel", "DOWNLOAD_FAILED", nil)
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *ReportAdminHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 60*time.Second)
}

func (h *ReportAdminHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
