package blob

import "context"

// BytesStore is a minimal persistent key->bytes store. Implementations must
// tolerate keys that were never written (ok=false, nil error).
type BytesStore interface {
	GetBytes(ctx context.Context, key string) (b []byte, ok bool, err error)
	SetBytes(ctx context.Context, key string, value []byte) error
}
