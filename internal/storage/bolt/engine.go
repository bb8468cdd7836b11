// Package bolt implements storage.Engine on a single bbolt file.
package bolt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"eventbooking/internal/storage"
)

// FileName is the database file created inside the store directory.
const FileName = "records.db"

var bucket = []byte("records")

// Engine is a storage.Engine backed by one bbolt bucket.
type Engine struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the store in dir.
func Open(dir string) (*Engine, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storage.WrapStore("open", err)
	}
	db, err := bbolt.Open(filepath.Join(dir, FileName), 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, storage.WrapStore("open", fmt.Errorf("%s: %w", dir, err))
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, storage.WrapStore("open", err)
	}
	return &Engine{db: db}, nil
}

func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := e.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get(key)
		if v == nil {
			return storage.ErrKeyNotFound
		}
		out = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, storage.WrapStore("get", err)
	}
	return out, nil
}

func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := e.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put(key, value)
	})
	return storage.WrapStore("put", err)
}

func (e *Engine) Batch(ctx context.Context, pairs []storage.KV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := e.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		for _, kv := range pairs {
			if err := b.Put(kv.Key, kv.Value); err != nil {
				return err
			}
		}
		return nil
	})
	return storage.WrapStore("batch", err)
}

func (e *Engine) Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := e.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if !fn(bytes.Clone(k), bytes.Clone(v)) {
				return nil
			}
		}
		return nil
	})
	return storage.WrapStore("scan", err)
}

func (e *Engine) Count(ctx context.Context, prefix []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	err := e.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, storage.WrapStore("count", err)
	}
	return n, nil
}

func (e *Engine) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := e.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucket)
		return err
	})
	return storage.WrapStore("clear", err)
}

func (e *Engine) Close() error {
	return storage.WrapStore("close", e.db.Close())
}

var _ storage.Engine = (*Engine)(nil)
