package repository

import "context"

// StorageRepository envia os relatórios exportados para um armazenamento de objetos.
type StorageRepository interface {
	Upload(ctx context.Context, localPath string, bucket string, key string) (string, error)
}
