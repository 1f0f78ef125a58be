// Package blob provides the key-value persistence collaborator used by
// the ledger store. A blob is an opaque serialized document; backends
// overwrite it whole on every write (last-writer-wins, no merge).
package blob

import "context"

// Store is the two-method persistence contract. Get reports absence
// via ok=false rather than an error so a fresh backend can be seeded.
type Store interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}
