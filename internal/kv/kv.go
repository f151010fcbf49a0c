// Package kv provides the persistent key-value store the feed writes through,
// with in-memory, Redis, and SQLite adapters.
package kv

import "context"

// Store is a synchronous key-value store. Get reports a missing key via
// ok=false rather than an error; a write is considered durable once Set
// returns. There is no retry layer: failures surface to the caller.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
