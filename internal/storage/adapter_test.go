package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/config"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

type failingBackend struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, f.getErr
}

func (f *failingBackend) Set(ctx context.Context, key string, value []byte) error {
	f.sets++
	return f.setErr
}

func (f *failingBackend) Close() error { return nil }

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDataset_Key(t *testing.T) {
	tests := map[Dataset]string{
		MenuItems:  "hotel_menu_items",
		Categories: "hotel_categories",
		Orders:     "hotel_orders",
		Admins:     "hotel_admins",
	}
	for ds, want := range tests {
		key, err := ds.Key()
		require.NoError(t, err)
		assert.Equal(t, want, key)
	}

	_, err := Dataset("reservations").Key()
	assert.ErrorIs(t, err, ErrUnknownDataset)
	assert.Len(t, datasetKeys, len(tests), "every dataset has a key")
}

func TestAdapter_SaveThenLoad(t *testing.T) {
	backend := NewMemoryBackend()
	adapter := NewAdapter(backend, logger.Discard(), time.Second)
	ctx := context.Background()

	adapter.Save(ctx, Categories, []record{{ID: "mains", Name: "Mains"}})

	raw, found, err := backend.Get(ctx, "hotel_categories")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"mains","name":"Mains"}]`, string(raw))

	got := Load(ctx, adapter, Categories, []record{})
	assert.Equal(t, []record{{ID: "mains", Name: "Mains"}}, got)
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	def := []record{{ID: "default"}}

	tests := []struct {
		name  string
		value []byte
		set   bool
	}{
		{"absent", nil, false},
		{"empty", []byte(""), true},
		{"whitespace", []byte("  \n"), true},
		{"null", []byte("null"), true},
		{"corrupt", []byte("{not json"), true},
		{"wrong shape", []byte(`{"id":"x"}`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewMemoryBackend()
			if tt.set {
				require.NoError(t, backend.Set(ctx, "hotel_orders", tt.value))
			}
			adapter := NewAdapter(backend, logger.Discard(), 0)

			assert.Equal(t, def, Load(ctx, adapter, Orders, def))
		})
	}

	t.Run("read error", func(t *testing.T) {
		adapter := NewAdapter(&failingBackend{getErr: errors.New("disk on fire")}, logger.Discard(), 0)
		assert.Equal(t, def, Load(ctx, adapter, Orders, def))
	})

	t.Run("unknown dataset", func(t *testing.T) {
		adapter := NewAdapter(NewMemoryBackend(), logger.Discard(), 0)
		assert.Equal(t, def, Load(ctx, adapter, Dataset("nope"), def))
	})
}

func TestAdapter_SaveSwallowsErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("write error", func(t *testing.T) {
		backend := &failingBackend{setErr: errors.New("quota exceeded")}
		adapter := NewAdapter(backend, logger.Discard(), 0)

		assert.NotPanics(t, func() { adapter.Save(ctx, Orders, []record{}) })
		assert.Equal(t, 1, backend.sets)
	})

	t.Run("encode error", func(t *testing.T) {
		backend := &failingBackend{}
		adapter := NewAdapter(backend, logger.Discard(), 0)

		adapter.Save(ctx, Orders, map[string]any{"bad": make(chan int)})
		assert.Zero(t, backend.sets, "nothing is written when encoding fails")
	})

	t.Run("unknown dataset", func(t *testing.T) {
		backend := &failingBackend{}
		adapter := NewAdapter(backend, logger.Discard(), 0)

		adapter.Save(ctx, Dataset("nope"), []record{})
		assert.Zero(t, backend.sets)
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	b, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: t.TempDir() + "/open.db"}, log)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)
	require.NoError(t, b.Close())

	_, err = Open(ctx, config.StorageConfig{Driver: "mongo"}, log)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
