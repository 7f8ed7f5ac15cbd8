package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// KV is the persistence backend: a flat key/value space of opaque blobs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open returns the KV backend for driver. dsn is a file path for
// sqlite and a connection URL for postgres; memory ignores it.
func Open(ctx context.Context, driver, dsn string) (KV, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryKV(), nil
	case DriverSQLite:
		return OpenSQLite(dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// MemoryKV keeps values in process memory.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
