package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/storage"
)

func TestSuccessor(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   []byte
	}{
		{name: "kind prefix", prefix: []byte("event:"), want: []byte("event;")},
		{name: "trailing ff is dropped", prefix: []byte{'a', 0xff}, want: []byte("b")},
		{name: "all ff", prefix: []byte{0xff, 0xff}, want: nil},
		{name: "empty", prefix: []byte{}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, successor(tt.prefix))
		})
	}
}

func TestEngine_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []byte
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv_records WHERE key = \$1`).
					WithArgs([]byte("venue:1")).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"1"}`)))
			},
			want: []byte(`{"id":"1"}`),
		},
		{
			name: "missing key",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv_records`).
					WithArgs([]byte("venue:1")).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   storage.ErrKeyNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv_records`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
			errIs:   storage.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewEngine(db).Get(ctx, []byte("venue:1"))
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEngine_Batch(t *testing.T) {
	ctx := context.Background()
	pairs := []storage.KV{
		{Key: []byte("user:1"), Value: []byte("{}")},
		{Key: []byte("user_email:a@b.c"), Value: []byte("1")},
	}

	t.Run("commits every pair", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO kv_records`).WithArgs(pairs[0].Key, pairs[0].Value).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO kv_records`).WithArgs(pairs[1].Key, pairs[1].Value).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewEngine(db).Batch(ctx, pairs))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO kv_records`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO kv_records`).WillReturnError(&pq.Error{Code: "53100"})
		mock.ExpectRollback()

		err = NewEngine(db).Batch(ctx, pairs)
		require.Error(t, err)
		var pqErr *pq.Error
		assert.True(t, errors.As(err, &pqErr))
		assert.ErrorIs(t, err, storage.ErrStore)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEngine_Scan(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT key, value FROM kv_records WHERE key >= \$1 AND key < \$2 ORDER BY key`).
		WithArgs([]byte("event:"), []byte("event;")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow([]byte("event:a"), []byte("1")).
			AddRow([]byte("event:b"), []byte("2")))

	var keys []string
	err = NewEngine(db).Scan(ctx, []byte("event:"), func(k, _ []byte) bool {
		keys = append(keys, string(k))
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"event:a", "event:b"}, keys)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_Count(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM \(SELECT key FROM kv_records`).
		WithArgs([]byte("user:"), []byte("user;")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewEngine(db).Count(ctx, []byte("user:"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_ClearAndMigrate(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_records`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM kv_records`).WillReturnResult(sqlmock.NewResult(0, 4))

	e := NewEngine(db)
	require.NoError(t, e.Migrate(ctx))
	require.NoError(t, e.Clear(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}
