package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/listafacil/listafacil/internal/common"
	"github.com/listafacil/listafacil/internal/logging"
	"github.com/listafacil/listafacil/internal/storage"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var errStoreDown = errors.New("store down")

// fakeStore is an in-memory Store recording the order of operations and
// optionally failing every call.
type fakeStore struct {
	mu   sync.Mutex
	data map[string]string
	ops  []string
	fail bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "get "+key)
	if f.fail {
		return "", errStoreDown
	}
	v, ok := f.data[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "set "+key)
	if f.fail {
		return errStoreDown
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "remove "+key)
	if f.fail {
		return errStoreDown
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStore) opLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ops))
	copy(out, f.ops)
	return out
}

func testLogger() logging.Logger {
	return logging.NewDefault()
}

// setupStore opens an in-memory SQLite store with the kv schema, for tests
// that exercise the real storage path.
func setupStore(t *testing.T) storage.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)

	return storage.NewSQLiteStore(db)
}
