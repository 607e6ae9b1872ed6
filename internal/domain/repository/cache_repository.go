package repository

import (
	"context"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
)

// CacheRepository guarda projeções indexadas pela impressão digital dos parâmetros.
// Get retorna types.ErrCacheMiss quando não há nada sob a chave.
type CacheRepository interface {
	Get(ctx context.Context, key string) (entity.ProjectionResult, error)
	Set(ctx context.Context, key string, result entity.ProjectionResult, ttl time.Duration) error
}
