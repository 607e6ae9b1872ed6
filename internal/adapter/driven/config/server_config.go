package config

import (
	"fmt"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/spf13/viper"
)

// LoadServerConfig lê as configurações do servidor HTTP. O arquivo é opcional;
// variáveis BIZCASE_* (ex.: BIZCASE_HTTP_ADDR, BIZCASE_CACHE_REDIS_ADDR) têm precedência.
func LoadServerConfig(path string) (types.ServerConfig, error) {
	v := viper.New()
	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl_seconds", 900)

	v.SetEnvPrefix("BIZCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c types.ServerConfig
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("error reading server config: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error decoding server config: %w", err)
	}
	return c, nil
}
