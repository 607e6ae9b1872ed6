package main

import (
	"fmt"
	"os"

	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/config"
	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/export"
	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/storage"
	"github.com/diillson/bizcase-simulator-go/internal/adapter/driving/cli"
	"github.com/diillson/bizcase-simulator-go/internal/application/usecase"
	"github.com/diillson/bizcase-simulator-go/pkg/console"
	"github.com/diillson/bizcase-simulator-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	storageRepo := storage.NewS3Repository("", "")
	consoleImpl := console.NewConsole()

	projectionUseCase := usecase.NewProjectionUseCase(
		configRepo,
		exportRepo,
		storageRepo,
		consoleImpl,
	)
	app.SetProjectionUseCase(projectionUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
