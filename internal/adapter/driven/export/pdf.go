package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

func (r *ExportRepositoryImpl) ExportToPDF(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := r.now().Format("2006-01-02")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by Business Case Simulator | %s", generated)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	}

	keyValues := func(lines [][2]string) {
		pdf.SetFont("Arial", "", 10)
		for _, kv := range lines {
			pdf.CellFormat(120, 6, tr(kv[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(kv[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	table := func(header []string, widths []float64, rows [][]string) {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(240, 240, 240)
		for i, h := range header {
			pdf.CellFormat(widths[i], 6, tr(h), "B", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 5, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Business Case Projection"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	subtitle := fmt.Sprintf("  %d months from %02d/%d", result.Parameters.HorizonMonths, result.Parameters.StartMonth, result.Parameters.StartYear)
	if result.RunID != "" {
		subtitle += "  |  run " + result.RunID
	}
	pdf.CellFormat(0, 8, tr(subtitle), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Key Figures")
	keyValues(kpiLines(result.KPIs))

	sectionTitle("Unit Economics")
	keyValues([][2]string{
		{"Margin per unit", formatNumber(result.UnitEconomics.MarginPerUnit)},
		{"Margin II per unit", formatNumber(result.UnitEconomics.ContributionPerUnit)},
		{"Net license 1 rate", formatNumber(result.UnitEconomics.NetLicenseOneRate)},
		{"Profit before tax per unit", formatNumber(result.UnitEconomics.ProfitPerUnit)},
	})

	if len(result.Years) > 0 {
		sectionTitle("Years")
		yearRows := make([][]string, 0, len(result.Years))
		for _, y := range result.Years {
			yearRows = append(yearRows, []string{
				fmt.Sprintf("%d (%s-%s)", y.Year, y.FirstLabel, y.LastLabel),
				formatNumber(y.TotalUnits), formatNumber(y.MarginII), formatNumber(y.LicenseOneFee),
				formatNumber(y.LicenseTwoFee), formatNumber(y.ResidualProfit),
			})
		}
		table([]string{"Year", "Units", "Margin II", "License 1", "License 2", "Residual"},
			[]float64{50, 28, 28, 28, 28, 28}, yearRows)
	}

	if len(result.Rows) > 0 {
		pdf.AddPage()
		sectionTitle("Monthly Ledger")
		monthRows := make([][]string, 0, len(result.Rows))
		for _, row := range result.Rows {
			monthRows = append(monthRows, []string{
				row.MonthLabel, fmt.Sprint(row.NewPartners), formatNumber(row.TotalUnits),
				formatNumber(row.GrossMargin), formatNumber(row.MarginII), formatNumber(row.LicenseOneFee),
				formatNumber(row.LicenseTwoFee), formatNumber(row.ResidualProfit),
			})
		}
		table([]string{"Month", "New", "Units", "Gross", "Margin II", "License 1", "License 2", "Residual"},
			[]float64{22, 14, 22, 26, 26, 26, 26, 28}, monthRows)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
