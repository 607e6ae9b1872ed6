package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const (
	ledgerSheet = "Ledger"
	yearsSheet  = "Years"
	kpiSheet    = "KPIs"
)

// ExportToXLSX grava o razão mensal, o resumo anual e os KPIs em três planilhas.
func (r *ExportRepositoryImpl) ExportToXLSX(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), ledgerSheet); err != nil {
		return "", fmt.Errorf("error naming ledger sheet: %w", err)
	}

	header := make([]interface{}, len(CSVHeader))
	for i, h := range CSVHeader {
		header[i] = h
	}
	rows := make([][]interface{}, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []interface{}{
			row.Month, row.MonthLabel, row.NewPartners, row.ReorderPartners,
			row.GrossMargin, row.SalesCost, row.LogisticsCost, row.MarginII,
			row.LicenseOneFee, row.LicenseTwoFee, row.ResidualProfit, row.TotalUnits,
		})
	}
	if err := writeSheet(f, ledgerSheet, header, rows); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(yearsSheet); err != nil {
		return "", fmt.Errorf("error creating years sheet: %w", err)
	}
	yearHeader := []interface{}{"Year", "From", "To", "Months", "NewPartners", "TotalUnits",
		"GrossMargin", "MarginII", "LicenseOneFee", "LicenseTwoFee", "ResidualProfit"}
	yearRows := make([][]interface{}, 0, len(result.Years))
	for _, y := range result.Years {
		yearRows = append(yearRows, []interface{}{
			y.Year, y.FirstLabel, y.LastLabel, y.Months, y.NewPartners, y.TotalUnits,
			y.GrossMargin, y.MarginII, y.LicenseOneFee, y.LicenseTwoFee, y.ResidualProfit,
		})
	}
	if err := writeSheet(f, yearsSheet, yearHeader, yearRows); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(kpiSheet); err != nil {
		return "", fmt.Errorf("error creating KPI sheet: %w", err)
	}
	kpiRows := make([][]interface{}, 0)
	for _, kv := range kpiLines(result.KPIs) {
		kpiRows = append(kpiRows, []interface{}{kv[0], kv[1]})
	}
	if err := writeSheet(f, kpiSheet, []interface{}{"KPI", "Value"}, kpiRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing %s header: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error addressing %s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("error writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
