package cache

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
)

// Fingerprint identifies a parameter set. Field order of the JSON encoding is
// fixed by the struct, so equal parameters always hash alike.
func Fingerprint(p entity.Parameters) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("error encoding parameters: %w", err)
	}
	return fmt.Sprintf("projection:%016x", xxhash.Sum64(data)), nil
}
