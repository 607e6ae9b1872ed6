package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/storage"
	"github.com/diillson/bizcase-simulator-go/internal/application/usecase"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/diillson/bizcase-simulator-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	projectionUseCase *usecase.ProjectionUseCase
	version           string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:   "bizcase",
		Short: "Business case simulator for partner-driven display sales",
		Long: "Projects partner cohorts, monthly units, margins and license fees over a horizon\n" +
			"and reports the resulting KPIs. Parameters come from the default scenario, an\n" +
			"optional config file and explicit flags, in that order.",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Bizcase Simulator version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON scenario file")
	rootCmd.Flags().StringP("report-name", "n", "", "Base name for the report files (without extension); no files are written when empty")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Report types: csv, json, pdf, xlsx, md, html (default csv)")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().String("s3-bucket", "", "Upload the exported reports to this S3 bucket")
	rootCmd.Flags().String("s3-prefix", "", "Key prefix for uploaded reports")
	rootCmd.Flags().String("aws-profile", "", "AWS profile used for uploads")
	rootCmd.Flags().String("aws-region", "", "AWS region used for uploads")
	rootCmd.Flags().StringP("locale", "l", "", "Locale for displayed numbers, e.g. de, en-US (default de)")
	rootCmd.Flags().Bool("trend", false, "Display residual profit and license revenue as trend bars")
	rootCmd.Flags().Bool("yearly", false, "Show yearly totals only and aggregate trend bars per year")
	addParameterFlags(rootCmd)

	rootCmd.AddCommand(app.newDefaultsCommand(), newServeCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs converte as flags em CLIArgs. Parâmetros só entram em Overrides quando
// foram informados explicitamente.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	locale, _ := flags.GetString("locale")
	trend, _ := flags.GetBool("trend")
	yearly, _ := flags.GetBool("yearly")

	// Converte para caminho absoluto; vazio fica vazio para o arquivo de configuração poder definir
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	overrides, err := parameterOverrides(flags)
	if err != nil {
		return nil, err
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		S3Bucket:   s3Bucket,
		S3Prefix:   s3Prefix,
		Locale:     locale,
		Trend:      trend,
		Yearly:     yearly,
		Overrides:  overrides,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	go checkLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	uc := app.projectionUseCase
	profile, _ := cmd.Flags().GetString("aws-profile")
	region, _ := cmd.Flags().GetString("aws-region")
	if profile != "" || region != "" {
		uc = uc.WithStorage(storage.NewS3Repository(profile, region))
	}

	return uc.RunProjection(context.Background(), cliArgs)
}

// SetProjectionUseCase sets the projection use case for the CLI app.
func (app *CLIApp) SetProjectionUseCase(useCase *usecase.ProjectionUseCase) {
	app.projectionUseCase = useCase
}
