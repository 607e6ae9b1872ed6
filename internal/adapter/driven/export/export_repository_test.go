package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/projection"
	"github.com/xuri/excelize/v2"
)

func fixedRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time {
		return time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	}}
}

func sampleResult() entity.ProjectionResult {
	p := entity.DefaultParameters()
	p.HorizonMonths = 14
	result := projection.Project(p)
	result.RunID = "8a7c1f0e-0000-4000-8000-000000000001"
	return result
}

func TestWriteCSV(t *testing.T) {
	rows := []entity.LedgerRow{{
		Month:           1,
		MonthLabel:      "07/2025",
		NewPartners:     4,
		ReorderPartners: 2,
		GrossMargin:     768,
		SalesCost:       0,
		LogisticsCost:   0,
		MarginII:        768,
		LicenseOneFee:   115.2,
		LicenseTwoFee:   166.4,
		ResidualProfit:  486.4,
		TotalUnits:      128,
	}}

	var buf bytes.Buffer
	if err := fixedRepo().WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "Month;MonthLabel;NewCustomers;ReorderCustomers;GrossMargin;SalesCost;LogisticsCost;MarginII;LicenseOneFee;LicenseTwoFee;ResidualProfit;TotalUnits\r\n" +
		"1;07/2025;4;2;768;0;0;768;115.2;166.4;486.4;128\r\n"
	if buf.String() != want {
		t.Errorf("CSV =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteCSVNegativeAndFractional(t *testing.T) {
	rows := []entity.LedgerRow{{Month: 3, MonthLabel: "09/2025", NewPartners: -1, GrossMargin: -12.5, TotalUnits: 10.67}}

	var buf bytes.Buffer
	if err := fixedRepo().WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1] != "3;09/2025;-1;0;-12.5;0;0;0;0;0;0;10.67" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	result := sampleResult()

	path, err := fixedRepo().ExportToCSV(result, "plan", dir)
	if err != nil {
		t.Fatalf("ExportToCSV() error = %v", err)
	}
	if filepath.Base(path) != "plan_20250701_093000.csv" {
		t.Errorf("file name = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	if len(lines) != len(result.Rows)+1 {
		t.Errorf("got %d lines, want %d", len(lines), len(result.Rows)+1)
	}
	if !strings.HasPrefix(lines[1], "1;07/2025;4;2;") {
		t.Errorf("first data line = %q", lines[1])
	}
}

func TestExportToJSON(t *testing.T) {
	result := sampleResult()
	path, err := fixedRepo().ExportToJSON(result, "plan", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	var decoded entity.ProjectionResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	if decoded.RunID != result.RunID || len(decoded.Rows) != len(result.Rows) {
		t.Errorf("decoded run %q with %d rows", decoded.RunID, len(decoded.Rows))
	}
	if decoded.KPIs != result.KPIs {
		t.Errorf("KPIs = %+v, want %+v", decoded.KPIs, result.KPIs)
	}
}

func TestExportToXLSX(t *testing.T) {
	result := sampleResult()
	path, err := fixedRepo().ExportToXLSX(result, "plan", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToXLSX() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open XLSX: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ledgerSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", ledgerSheet, err)
	}
	if len(rows) != len(result.Rows)+1 {
		t.Fatalf("ledger sheet has %d rows, want %d", len(rows), len(result.Rows)+1)
	}
	if strings.Join(rows[0], ";") != strings.Join(CSVHeader, ";") {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "07/2025" {
		t.Errorf("first label = %q, want 07/2025", rows[1][1])
	}

	years, err := f.GetRows(yearsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", yearsSheet, err)
	}
	if len(years) != len(result.Years)+1 {
		t.Errorf("years sheet has %d rows, want %d", len(years), len(result.Years)+1)
	}
}

func TestExportToPDF(t *testing.T) {
	path, err := fixedRepo().ExportToPDF(sampleResult(), "plan", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToPDF() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("file does not start with a PDF header")
	}
}

func TestExportToMarkdownAndHTML(t *testing.T) {
	dir := t.TempDir()
	result := sampleResult()
	repo := fixedRepo()

	mdPath, err := repo.ExportToMarkdown(result, "plan", dir)
	if err != nil {
		t.Fatalf("ExportToMarkdown() error = %v", err)
	}
	md, _ := os.ReadFile(mdPath)
	for _, want := range []string{"# Business Case Projection", "## KPIs", "| 07/2025 |", result.RunID} {
		if !strings.Contains(string(md), want) {
			t.Errorf("Markdown report lacks %q", want)
		}
	}

	htmlPath, err := repo.ExportToHTML(result, "plan", dir)
	if err != nil {
		t.Fatalf("ExportToHTML() error = %v", err)
	}
	html, _ := os.ReadFile(htmlPath)
	for _, want := range []string{"<h1>Business Case Projection</h1>", "<table>", "<td>07/2025</td>"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("HTML report lacks %q", want)
		}
	}
}

func TestExportEmptyProjection(t *testing.T) {
	p := entity.DefaultParameters()
	p.HorizonMonths = 0
	result := projection.Project(p)
	dir := t.TempDir()
	repo := fixedRepo()

	path, err := repo.ExportToCSV(result, "empty", dir)
	if err != nil {
		t.Fatalf("ExportToCSV() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Count(string(data), "\r\n") != 1 {
		t.Errorf("empty projection CSV should hold only the header, got %q", data)
	}

	if _, err := repo.ExportToPDF(result, "empty", dir); err != nil {
		t.Errorf("ExportToPDF() error = %v", err)
	}
	if _, err := repo.ExportToXLSX(result, "empty", dir); err != nil {
		t.Errorf("ExportToXLSX() error = %v", err)
	}
}
