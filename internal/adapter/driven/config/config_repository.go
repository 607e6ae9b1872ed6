package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, fileExtension)
	}

	return &config, nil
}

// EncodeParameters serializa um cenário no formato pedido (toml, yaml ou json),
// dentro de uma seção "scenario" para que o resultado possa ser lido de volta
// por LoadConfigFile.
func (r *ConfigRepositoryImpl) EncodeParameters(cfg types.ScenarioConfig, format string) ([]byte, error) {
	doc := struct {
		Scenario types.ScenarioConfig `json:"scenario" yaml:"scenario" toml:"scenario"`
	}{Scenario: cfg}

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error encoding TOML: %w", err)
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error encoding YAML: %w", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, format)
	}
}
