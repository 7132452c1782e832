// Package metadata is the durable key/value store behind the client session.
//
// Values are opaque byte slices. Get on an absent key returns (nil, nil).
// Two implementations exist: SQLiteRepository (the default, one local file)
// and RedisRepository (shared kiosks, see config -r).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes every pair or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
