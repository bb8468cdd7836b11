// Package kv implements the domain repositories on a storage.Engine.
// Repositories never log; they return domain.ErrNotFound for misses and
// storage typed errors for everything else.
package kv

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

// recordPtr constrains P to a pointer to an entity struct T.
type recordPtr[T any] interface {
	*T
	storage.Record
}

func getRecord[T any, P recordPtr[T]](ctx context.Context, store storage.Engine, kind storage.Kind, id uuid.UUID) (P, error) {
	key := kind.Key(id)
	b, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := P(new(T))
	if err := storage.Decode(kind, key, b, out); err != nil {
		return nil, err
	}
	return out, nil
}

func putRecord(ctx context.Context, store storage.Engine, kind storage.Kind, r storage.Record) error {
	b, err := storage.Encode(kind, r)
	if err != nil {
		return err
	}
	return store.Put(ctx, kind.Key(r.RecordID()), b)
}

// listRecords decodes every record of kind, keeping those accepted by keep
// (all when keep is nil). One undecodable record fails the whole listing.
func listRecords[T any, P recordPtr[T]](ctx context.Context, store storage.Engine, kind storage.Kind, keep func(P) bool) ([]P, error) {
	out := []P{}
	var decodeErr error
	err := store.Scan(ctx, kind.Prefix(), func(key, value []byte) bool {
		rec := P(new(T))
		if decodeErr = storage.Decode(kind, key, value, rec); decodeErr != nil {
			return false
		}
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return out, nil
}
