package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/projection"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/google/uuid"
)

// ProjectionUseCase handles the projection run started from the CLI.
type ProjectionUseCase struct {
	configRepo  repository.ConfigRepository
	exportRepo  repository.ExportRepository
	storageRepo repository.StorageRepository
	console     types.ConsoleInterface
	newRunID    func() string
}

// NewProjectionUseCase creates a new projection use case.
// storageRepo may be nil when uploads are not needed.
func NewProjectionUseCase(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	storageRepo repository.StorageRepository,
	console types.ConsoleInterface,
) *ProjectionUseCase {
	return &ProjectionUseCase{
		configRepo:  configRepo,
		exportRepo:  exportRepo,
		storageRepo: storageRepo,
		console:     console,
		newRunID:    uuid.NewString,
	}
}

// ResolveParameters monta os parâmetros finais: cenário padrão, depois o arquivo de
// configuração (se houver) e por fim as flags definidas explicitamente.
// As configurações de relatório do arquivo só preenchem o que a CLI deixou vazio.
func (uc *ProjectionUseCase) ResolveParameters(args *types.CLIArgs) (entity.Parameters, error) {
	params := entity.DefaultParameters()

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return params, err
		}
		if err := ApplyScenario(&params, cfg.Scenario); err != nil {
			return params, fmt.Errorf("config file %s: %w", args.ConfigFile, err)
		}
		mergeReportSettings(args, cfg)
	}

	if err := ApplyScenario(&params, args.Overrides); err != nil {
		return params, err
	}

	if err := params.Validate(); err != nil {
		return params, err
	}

	return params, nil
}

func mergeReportSettings(args *types.CLIArgs, cfg *types.Config) {
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.S3Bucket == "" {
		args.S3Bucket = cfg.S3Bucket
	}
	if args.S3Prefix == "" {
		args.S3Prefix = cfg.S3Prefix
	}
	if args.Locale == "" {
		args.Locale = cfg.Locale
	}
	args.Trend = args.Trend || cfg.Trend
}

// Compute executa o motor e atribui um identificador à execução.
func (uc *ProjectionUseCase) Compute(params entity.Parameters) entity.ProjectionResult {
	result := projection.Project(params)
	result.RunID = uc.newRunID()
	return result
}

// RunProjection executa a funcionalidade principal: calcula, exibe e exporta.
func (uc *ProjectionUseCase) RunProjection(ctx context.Context, args *types.CLIArgs) error {
	params, err := uc.ResolveParameters(args)
	if err != nil {
		return err
	}

	status := uc.console.Status("Computing projection...")
	result := uc.Compute(params)
	status.Stop()

	if len(result.Rows) == 0 {
		uc.console.LogWarning("Horizon is 0 months; nothing to project.")
	}

	uc.render(result, args)

	if args.ReportName == "" {
		return nil
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	paths := uc.exportReports(result, args.ReportName, args.Dir, reportTypes)

	if args.S3Bucket != "" {
		uc.uploadReports(ctx, paths, args.S3Bucket, args.S3Prefix)
	}

	return nil
}

// exportReports gera cada tipo pedido. Falhas são registradas e não interrompem os demais.
func (uc *ProjectionUseCase) exportReports(result entity.ProjectionResult, name, dir string, reportTypes []string) []string {
	var paths []string
	for _, reportType := range reportTypes {
		var (
			p   string
			err error
		)

		kind := strings.ToLower(strings.TrimSpace(reportType))
		switch kind {
		case "csv":
			p, err = uc.exportRepo.ExportToCSV(result, name, dir)
		case "json":
			p, err = uc.exportRepo.ExportToJSON(result, name, dir)
		case "pdf":
			p, err = uc.exportRepo.ExportToPDF(result, name, dir)
		case "xlsx":
			p, err = uc.exportRepo.ExportToXLSX(result, name, dir)
		case "md", "markdown":
			kind = "Markdown"
			p, err = uc.exportRepo.ExportToMarkdown(result, name, dir)
		case "html":
			p, err = uc.exportRepo.ExportToHTML(result, name, dir)
		default:
			uc.console.LogError("%s", fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType))
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(kind), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(kind), p)
		paths = append(paths, p)
	}
	return paths
}

func (uc *ProjectionUseCase) uploadReports(ctx context.Context, paths []string, bucket, prefix string) {
	if uc.storageRepo == nil {
		uc.console.LogWarning("No storage configured; skipping upload to %s", bucket)
		return
	}
	for _, p := range paths {
		key := path.Join(prefix, filepath.Base(p))
		location, err := uc.storageRepo.Upload(ctx, p, bucket, key)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", filepath.Base(p), err)
			continue
		}
		uc.console.LogSuccess("Uploaded report to %s", location)
	}
}

// PrintDefaults imprime o cenário padrão no formato pedido (toml, yaml ou json).
func (uc *ProjectionUseCase) PrintDefaults(format string) error {
	out, err := uc.configRepo.EncodeParameters(ScenarioFromParameters(entity.DefaultParameters()), format)
	if err != nil {
		return err
	}
	uc.console.Print(string(out))
	return nil
}

// WithStorage retorna uma cópia do caso de uso que envia os relatórios para repo.
func (uc *ProjectionUseCase) WithStorage(repo repository.StorageRepository) *ProjectionUseCase {
	clone := *uc
	clone.storageRepo = repo
	return &clone
}
