// Package postgres implements storage.Engine on a single PostgreSQL table,
// for deployments that keep the store outside the process host.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"eventbooking/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_records (
		key   BYTEA PRIMARY KEY,
		value BYTEA NOT NULL
	)
`

const upsert = `
	INSERT INTO kv_records (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
`

// Engine is a storage.Engine over the kv_records table.
type Engine struct {
	DB *sql.DB
}

// NewEngine wraps db. Call Migrate once before use.
func NewEngine(db *sql.DB) *Engine {
	return &Engine{DB: db}
}

// Open connects to databaseURL through lib/pq, checks the connection and
// creates the table.
func Open(ctx context.Context, databaseURL string) (*Engine, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	e := NewEngine(db)
	if err := e.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return e, nil
}

// Migrate creates the kv_records table if it does not exist.
func (e *Engine) Migrate(ctx context.Context) error {
	_, err := e.DB.ExecContext(ctx, schema)
	return storage.WrapStore("migrate", err)
}

func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	var value []byte
	err := e.DB.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, storage.WrapStore("get", err)
	}
	return value, nil
}

func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	_, err := e.DB.ExecContext(ctx, upsert, key, value)
	return storage.WrapStore("put", err)
}

func (e *Engine) Batch(ctx context.Context, pairs []storage.KV) error {
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return storage.WrapStore("batch", err)
	}
	for _, kv := range pairs {
		if _, err := tx.ExecContext(ctx, upsert, kv.Key, kv.Value); err != nil {
			_ = tx.Rollback()
			return storage.WrapStore("batch", err)
		}
	}
	return storage.WrapStore("batch", tx.Commit())
}

// rangeQuery builds a key-range predicate for prefix. LIKE is avoided because
// keys may contain '_' and '%'.
func rangeQuery(selectList string, prefix []byte) (string, []any) {
	upper := successor(prefix)
	if upper == nil {
		return `SELECT ` + selectList + ` FROM kv_records WHERE key >= $1 ORDER BY key`, []any{prefix}
	}
	return `SELECT ` + selectList + ` FROM kv_records WHERE key >= $1 AND key < $2 ORDER BY key`, []any{prefix, upper}
}

// successor returns the smallest key greater than every key starting with
// prefix, or nil when no such key exists.
func successor(prefix []byte) []byte {
	out := append([]byte(nil), prefix...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 0xff {
			out[i]++
			return out[:i+1]
		}
	}
	return nil
}

func (e *Engine) Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) bool) error {
	query, args := rangeQuery("key, value", prefix)
	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.WrapStore("scan", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return storage.WrapStore("scan", err)
		}
		if !fn(k, v) {
			return nil
		}
	}
	return storage.WrapStore("scan", rows.Err())
}

func (e *Engine) Count(ctx context.Context, prefix []byte) (int, error) {
	query, args := rangeQuery("key", prefix)
	var n int
	err := e.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM (`+query+`) AS scoped`, args...).Scan(&n)
	if err != nil {
		return 0, storage.WrapStore("count", err)
	}
	return n, nil
}

func (e *Engine) Clear(ctx context.Context) error {
	_, err := e.DB.ExecContext(ctx, `DELETE FROM kv_records`)
	return storage.WrapStore("clear", err)
}

func (e *Engine) Close() error {
	return storage.WrapStore("close", e.DB.Close())
}

var _ storage.Engine = (*Engine)(nil)
