package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a flat key-value slot store. Each entity collection is
// serialized wholesale under a single key, so the interface is
// deliberately minimal: there are no range queries and no partial
// updates.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

type Mode string

const (
	ModeMemory Mode = "memory"
	ModeSQLite Mode = "sqlite"
	ModeRedis  Mode = "redis"
)

func IsSupportedMode(m Mode) bool {
	switch m {
	case ModeMemory, ModeSQLite, ModeRedis:
		return true
	default:
		return false
	}
}
