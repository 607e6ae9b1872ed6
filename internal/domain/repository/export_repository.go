package repository

import (
	"io"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
)

// ExportRepository grava uma projeção em arquivos de relatório e retorna os caminhos absolutos.
type ExportRepository interface {
	ExportToCSV(result entity.ProjectionResult, filename string, outputDir string) (string, error)
	ExportToJSON(result entity.ProjectionResult, filename string, outputDir string) (string, error)
	ExportToPDF(result entity.ProjectionResult, filename string, outputDir string) (string, error)
	ExportToXLSX(result entity.ProjectionResult, filename string, outputDir string) (string, error)
	ExportToMarkdown(result entity.ProjectionResult, filename string, outputDir string) (string, error)
	ExportToHTML(result entity.ProjectionResult, filename string, outputDir string) (string, error)

	// WriteCSV escreve as linhas no layout CSV sem tocar no sistema de arquivos.
	WriteCSV(w io.Writer, rows []entity.LedgerRow) error
}
