// Package storage mirrors the application datasets to a key-value backend.
//
// Writes are fire-and-forget: the in-memory state stays authoritative, so a
// failed save is logged and otherwise ignored. Reads fall back to a default
// value when the dataset is missing or unreadable.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

var (
	ErrUnknownDriver  = errors.New("unknown storage driver")
	ErrUnknownDataset = errors.New("unknown dataset")
)

// Dataset names one of the persisted collections
type Dataset string

const (
	MenuItems  Dataset = "menuItems"
	Categories Dataset = "categories"
	Orders     Dataset = "orders"
	Admins     Dataset = "admins"
)

var datasetKeys = map[Dataset]string{
	MenuItems:  "hotel_menu_items",
	Categories: "hotel_categories",
	Orders:     "hotel_orders",
	Admins:     "hotel_admins",
}

// Key returns the fixed storage key of the dataset
func (d Dataset) Key() (string, error) {
	key, ok := datasetKeys[d]
	if !ok {
		return "", ErrUnknownDataset
	}
	return key, nil
}

// Backend is a raw key-value store
type Backend interface {
	// Get returns the stored value; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Adapter serializes datasets as JSON onto a Backend
type Adapter struct {
	backend Backend
	logger  *slog.Logger
	timeout time.Duration
}

// NewAdapter creates an adapter. A zero timeout means calls are bounded only
// by the caller's context.
func NewAdapter(backend Backend, logger *slog.Logger, timeout time.Duration) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		backend: backend,
		logger:  logger,
		timeout: timeout,
	}
}

// Save writes collection under the dataset key.
// Errors are logged and swallowed.
func (a *Adapter) Save(ctx context.Context, dataset Dataset, collection any) {
	key, err := dataset.Key()
	if err != nil {
		a.logger.Error("failed to save dataset", "dataset", dataset, "error", err)
		return
	}

	data, err := json.Marshal(collection)
	if err != nil {
		a.logger.Error("failed to encode dataset", "dataset", dataset, "error", err)
		return
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.backend.Set(ctx, key, data); err != nil {
		a.logger.Error("failed to save dataset", "dataset", dataset, "key", key, "error", err)
		return
	}

	a.logger.Debug("dataset saved", "dataset", dataset, "bytes", len(data))
}

// Close releases the backend
func (a *Adapter) Close() error {
	return a.backend.Close()
}

// Load reads a dataset, returning defaultValue when it is absent, empty,
// corrupt or cannot be read. Failures are logged.
func Load[T any](ctx context.Context, a *Adapter, dataset Dataset, defaultValue T) T {
	key, err := dataset.Key()
	if err != nil {
		a.logger.Error("failed to load dataset", "dataset", dataset, "error", err)
		return defaultValue
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	raw, found, err := a.backend.Get(ctx, key)
	if err != nil {
		a.logger.Error("failed to load dataset", "dataset", dataset, "key", key, "error", err)
		return defaultValue
	}

	raw = bytes.TrimSpace(raw)
	if !found || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		a.logger.Error("failed to decode dataset", "dataset", dataset, "key", key, "error", err)
		return defaultValue
	}

	return value
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
