package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
)

// CSVHeader is the fixed column order of the ledger CSV.
var CSVHeader = []string{
	"Month",
	"MonthLabel",
	"NewCustomers",
	"ReorderCustomers",
	"GrossMargin",
	"SalesCost",
	"LogisticsCost",
	"MarginII",
	"LicenseOneFee",
	"LicenseTwoFee",
	"ResidualProfit",
	"TotalUnits",
}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- CSV / JSON ---

func (r *ExportRepositoryImpl) ExportToCSV(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if err := r.WriteCSV(file, result.Rows); err != nil {
		return "", err
	}

	return filepath.Abs(outputFilename)
}

// WriteCSV escreve as linhas separadas por ";" com quebras CRLF e decimais com ".".
func (r *ExportRepositoryImpl) WriteCSV(w io.Writer, rows []entity.LedgerRow) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	writer.UseCRLF = true

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Month),
			row.MonthLabel,
			strconv.Itoa(row.NewPartners),
			strconv.Itoa(row.ReorderPartners),
			formatNumber(row.GrossMargin),
			formatNumber(row.SalesCost),
			formatNumber(row.LogisticsCost),
			formatNumber(row.MarginII),
			formatNumber(row.LicenseOneFee),
			formatNumber(row.LicenseTwoFee),
			formatNumber(row.ResidualProfit),
			formatNumber(row.TotalUnits),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

func (r *ExportRepositoryImpl) ExportToJSON(result entity.ProjectionResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// formatNumber usa a menor representação decimal com ponto, sem expoente.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
