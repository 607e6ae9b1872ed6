package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
)

type fakeConsole struct {
	printed  []string
	infos    []string
	warnings []string
	errors   []string
	success  []string
	panels   []string
	trends   []string
}

func (c *fakeConsole) Print(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.printed = append(c.printed, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Println(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface {
	return &fakeTable{}
}
func (c *fakeConsole) DisplayPanel(title, body string) { c.panels = append(c.panels, title) }
func (c *fakeConsole) DisplayTrendBars(title string, series []types.MonthlyValue, format func(float64) string) {
	c.trends = append(c.trends, fmt.Sprintf("%s:%d", title, len(series)))
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	rows int
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}
func (t *fakeTable) AddRow(...interface{})            { t.rows++ }
func (t *fakeTable) Render() string                   { return fmt.Sprintf("table with %d rows", t.rows) }

type fakeConfigRepo struct {
	cfg     *types.Config
	err     error
	encoded []byte
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	return r.cfg, r.err
}

func (r *fakeConfigRepo) EncodeParameters(cfg types.ScenarioConfig, format string) ([]byte, error) {
	if format != "yaml" {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, format)
	}
	return r.encoded, nil
}

type fakeExportRepo struct {
	calls  []string
	failOn string
	last   entity.ProjectionResult
}

func (r *fakeExportRepo) export(kind string, result entity.ProjectionResult, filename, dir string) (string, error) {
	r.calls = append(r.calls, kind)
	r.last = result
	if kind == r.failOn {
		return "", errors.New("disk full")
	}
	return filepath.Join(dir, filename+"."+kind), nil
}

func (r *fakeExportRepo) ExportToCSV(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("csv", res, f, d)
}
func (r *fakeExportRepo) ExportToJSON(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("json", res, f, d)
}
func (r *fakeExportRepo) ExportToPDF(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("pdf", res, f, d)
}
func (r *fakeExportRepo) ExportToXLSX(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("xlsx", res, f, d)
}
func (r *fakeExportRepo) ExportToMarkdown(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("md", res, f, d)
}
func (r *fakeExportRepo) ExportToHTML(res entity.ProjectionResult, f, d string) (string, error) {
	return r.export("html", res, f, d)
}
func (r *fakeExportRepo) WriteCSV(io.Writer, []entity.LedgerRow) error { return nil }

type fakeStorage struct {
	keys []string
}

func (s *fakeStorage) Upload(_ context.Context, localPath, bucket, key string) (string, error) {
	s.keys = append(s.keys, key)
	return "s3://" + bucket + "/" + key, nil
}
