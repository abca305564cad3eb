package businessflow

import (
	"context"
	"strconv"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
	"github.com/xuri/excelize/v2"
)

// ReportFlow produces downloadable exports of the policy book.
type ReportFlow interface {
	DownloadPoliciesExcel(ctx context.Context) (string, []byte, error)
}

type ReportFlowImpl struct {
	autoPolicyRepo repository.AutoPolicyRepository
	homePolicyRepo repository.HomePolicyRepository
}

// NewReportFlow creates a new report flow instance
func NewReportFlow(
	autoPolicyRepo repository.AutoPolicyRepository,
	homePolicyRepo repository.HomePolicyRepository,
) ReportFlow {
	return &ReportFlowImpl{
		autoPolicyRepo: autoPolicyRepo,
		homePolicyRepo: homePolicyRepo,
	}
}

// DownloadPoliciesExcel builds a workbook with one sheet per policy line.
func (f *ReportFlowImpl) DownloadPoliciesExcel(ctx context.Context) (string, []byte, error) {
	autoPolicies, err := f.autoPolicyRepo.ByFilter(ctx, models.AutoPolicyFilter{}, "id ASC", 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("REPORT_AUTO_POLICY_FETCH_FAILED", "Failed to fetch auto policies", err)
	}

	homePolicies, err := f.homePolicyRepo.ByFilter(ctx, models.HomePolicyFilter{}, "id ASC", 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("REPORT_HOME_POLICY_FETCH_FAILED", "Failed to fetch home policies", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	autoSheet := "auto_policies"
	xl.SetSheetName(xl.GetSheetName(0), autoSheet)

	autoHeader := []string{"id", "uuid", "quote_id", "customer_id", "vehicle_id", "effective_date", "end_date", "base_premium", "premium", "tax_rate", "active"}
	_ = xl.SetSheetRow(autoSheet, "A1", &autoHeader)

	for ri, p := range autoPolicies {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.UUID.String(),
			strconv.FormatUint(uint64(p.QuoteID), 10),
			strconv.FormatUint(uint64(p.CustomerID), 10),
			strconv.FormatUint(uint64(p.VehicleID), 10),
			formatDate(p.EffectiveDate),
			formatDate(p.EndDate),
			strconv.Itoa(p.BasePremium),
			strconv.FormatFloat(p.Premium, 'f', 2, 64),
			strconv.FormatFloat(p.TaxRate, 'f', -1, 64),
			strconv.FormatBool(p.Active),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(autoSheet, cellRef, &record)
	}

	homeSheet := "home_policies"
	_, _ = xl.NewSheet(homeSheet)

	homeHeader := []string{"id", "uuid", "quote_id", "customer_id", "home_id", "effective_date", "end_date", "liability_limit", "base_premium", "premium", "tax_rate", "active"}
	_ = xl.SetSheetRow(homeSheet, "A1", &homeHeader)

	for ri, p := range homePolicies {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.UUID.String(),
			strconv.FormatUint(uint64(p.QuoteID), 10),
			strconv.FormatUint(uint64(p.CustomerID), 10),
			strconv.FormatUint(uint64(p.HomeID), 10),
			formatDate(p.EffectiveDate),
			formatDate(p.EndDate),
			strconv.Itoa(p.LiabilityLimit),
			strconv.Itoa(p.BasePremium),
			strconv.FormatFloat(p.Premium, 'f', 2, 64),
			strconv.FormatFloat(p.TaxRate, 'f', -1, 64),
			strconv.FormatBool(p.Active),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(homeSheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("REPORT_EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	return "policies.xlsx", buf.Bytes(), nil
}
