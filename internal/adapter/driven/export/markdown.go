package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func (r *ExportRepositoryImpl) ExportToMarkdown(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "md")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(renderMarkdown(result, r.now().Format("2006-01-02"))), 0644); err != nil {
		return "", fmt.Errorf("error writing Markdown file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToHTML(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(renderMarkdown(result, r.now().Format("2006-01-02"))), &body); err != nil {
		return "", fmt.Errorf("error rendering HTML report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Business Case Projection</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(outputFilename, page.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// renderMarkdown monta o relatório: parâmetros, KPIs, resumo anual e razão mensal.
func renderMarkdown(result entity.ProjectionResult, generated string) string {
	var sb strings.Builder
	p := result.Parameters
	k := result.KPIs

	sb.WriteString("# Business Case Projection\n\n")
	if result.RunID != "" {
		fmt.Fprintf(&sb, "Run `%s`, generated %s.\n\n", result.RunID, generated)
	} else {
		fmt.Fprintf(&sb, "Generated %s.\n\n", generated)
	}

	sb.WriteString("## Parameters\n\n| Parameter | Value |\n|---|---|\n")
	for _, kv := range parameterLines(p) {
		fmt.Fprintf(&sb, "| %s | %s |\n", kv[0], kv[1])
	}

	sb.WriteString("\n## Unit economics\n\n| Figure | Per unit |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Margin | %s |\n", formatNumber(result.UnitEconomics.MarginPerUnit))
	fmt.Fprintf(&sb, "| Margin II | %s |\n", formatNumber(result.UnitEconomics.ContributionPerUnit))
	fmt.Fprintf(&sb, "| Net license 1 rate | %s |\n", formatNumber(result.UnitEconomics.NetLicenseOneRate))
	fmt.Fprintf(&sb, "| Profit before tax | %s |\n", formatNumber(result.UnitEconomics.ProfitPerUnit))

	sb.WriteString("\n## KPIs\n\n| KPI | Value |\n|---|---:|\n")
	for _, kv := range kpiLines(k) {
		fmt.Fprintf(&sb, "| %s | %s |\n", kv[0], kv[1])
	}

	if len(result.Years) > 0 {
		sb.WriteString("\n## Years\n\n| Year | Period | New partners | Units | Margin II | License 1 | License 2 | Residual profit |\n")
		sb.WriteString("|---:|---|---:|---:|---:|---:|---:|---:|\n")
		for _, y := range result.Years {
			fmt.Fprintf(&sb, "| %d | %s - %s | %d | %s | %s | %s | %s | %s |\n",
				y.Year, y.FirstLabel, y.LastLabel, y.NewPartners,
				formatNumber(y.TotalUnits), formatNumber(y.MarginII),
				formatNumber(y.LicenseOneFee), formatNumber(y.LicenseTwoFee), formatNumber(y.ResidualProfit))
		}
	}

	if len(result.Rows) > 0 {
		sb.WriteString("\n## Monthly ledger\n\n| Month | New | Reorder units | Units | Gross margin | Margin II | License 1 | License 2 | Residual profit |\n")
		sb.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|---:|\n")
		for _, row := range result.Rows {
			fmt.Fprintf(&sb, "| %s | %d | %s | %s | %s | %s | %s | %s | %s |\n",
				row.MonthLabel, row.NewPartners, formatNumber(row.ReorderUnits), formatNumber(row.TotalUnits),
				formatNumber(row.GrossMargin), formatNumber(row.MarginII),
				formatNumber(row.LicenseOneFee), formatNumber(row.LicenseTwoFee), formatNumber(row.ResidualProfit))
		}
	}

	return sb.String()
}

func parameterLines(p entity.Parameters) [][2]string {
	return [][2]string{
		{"Horizon (months)", fmt.Sprint(p.HorizonMonths)},
		{"Start", fmt.Sprintf("%d-%02d", p.StartYear, p.StartMonth)},
		{"Unit cost", formatNumber(p.UnitCost)},
		{"Unit sell price", formatNumber(p.UnitSellPrice)},
		{"Sales cost per unit", formatNumber(p.SalesCostPerUnit)},
		{"Logistics cost per unit", formatNumber(p.LogisticsCostPerUnit)},
		{"Units per display", fmt.Sprint(p.UnitsPerDisplay)},
		{"New partners per month", fmt.Sprint(p.BasePartnersPerMonth)},
		{"Growth interval (months)", fmt.Sprint(p.GrowthIntervalMonths)},
		{"Growth increment", fmt.Sprint(p.GrowthIncrement)},
		{"Reorder rate (%)", formatNumber(p.ReorderRate)},
		{"Reorder cycle (months)", fmt.Sprint(p.ReorderCycleMonths)},
		{"License 1 gross per unit", formatNumber(p.LicenseOneGrossPerUnit)},
		{"Postcard cost per unit", formatNumber(p.PostcardCostPerUnit)},
		{"Graphic share per unit", formatNumber(p.GraphicShareCostPerUnit)},
		{"License 2 fee per unit", formatNumber(p.LicenseTwoFeePerUnit)},
		{"License 2 partner threshold", fmt.Sprint(p.LicenseTwoThreshold)},
	}
}

func kpiLines(k entity.KPIs) [][2]string {
	return [][2]string{
		{"Total new partners", fmt.Sprint(k.TotalNewPartners)},
		{"Partners with at least one reorder", fmt.Sprint(k.PartnersWithAtLeastOneReorder)},
		{"Partners without reorder", fmt.Sprint(k.PartnersWithoutReorder)},
		{"Avg units per partner, year 1", formatNumber(k.AverageUnitsPerPartnerYear1)},
		{"Avg units per partner, year 2", formatNumber(k.AverageUnitsPerPartnerYear2)},
		{"Avg revenue per partner, year 1", formatNumber(k.AverageRevenuePerPartnerYear1)},
		{"Avg revenue per partner, year 2", formatNumber(k.AverageRevenuePerPartnerYear2)},
		{"Total units", formatNumber(k.TotalUnitsOverHorizon)},
		{"Avg units per month", formatNumber(k.AverageUnitsPerMonth)},
		{"Total license 1 revenue", formatNumber(k.TotalLicenseOneRevenue)},
		{"Avg license 1 revenue per month", formatNumber(k.AverageLicenseOnePerMonth)},
		{"License 1 revenue, last month", formatNumber(k.LastMonthLicenseOneRevenue)},
		{"Total license 2 revenue", formatNumber(k.TotalLicenseTwoRevenue)},
		{"Avg license 2 revenue per month", formatNumber(k.AverageLicenseTwoPerMonth)},
		{"License 2 revenue, last month", formatNumber(k.LastMonthLicenseTwoRevenue)},
		{"Total margin II", formatNumber(k.TotalMarginII)},
		{"Total residual profit", formatNumber(k.TotalResidualProfit)},
	}
}
