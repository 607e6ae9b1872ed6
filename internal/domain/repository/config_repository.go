package repository

import (
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
)

// ConfigRepository define a interface para carregar e gerar arquivos de configuração.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	EncodeParameters(cfg types.ScenarioConfig, format string) ([]byte, error)
}
