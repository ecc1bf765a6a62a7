package slots

import (
	"context"
)

// Repository is a key-value store of slot payloads. Get returns (nil, nil)
// for a key that has never been set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
