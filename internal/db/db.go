// Package db defines the storage facade used when the corpus is served
// from Redis instead of the local filesystem.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrKeyNotFound signals a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Op identifies the failed storage operation.
type Op string

// Known operations.
const (
	OpGet  Op = "get"
	OpPing Op = "ping"
)

// Error wraps a storage failure with the operation that produced it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("db %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVReader provides read-only key-value access. The corpus source only
// ever reads; moltscope never writes back to the store.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Store is the facade combining the narrow consumer interfaces.
type Store interface {
	Pinger
	KVReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}
