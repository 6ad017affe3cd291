// pkg/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mozillazg/go-unidecode"

	"github.com/qoriq-io/dq-engine/pkg/config"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

// Store persists cleaned datasets and the audit trail of fix operations.
// It is the only I/O boundary of the engine and is optional at every call
// site; the core pipeline never touches it.
type Store interface {
	// SaveDataset writes a cleaned dataset under a key, replacing any
	// previous dataset with the same key.
	SaveDataset(ctx context.Context, key string, rows []model.Row) error

	// LoadDataset retrieves a dataset by key. A missing key is reported as
	// ok=false with a nil error: absent data is "no data", not a failure.
	LoadDataset(ctx context.Context, key string) ([]model.Row, bool, error)

	// RecordFixOperations appends fix operations to the audit table.
	RecordFixOperations(ctx context.Context, runID string, ops []model.FixOperation) error

	// Close releases the underlying connection.
	Close() error
}

// New creates a store for the configured driver. The sqlite driver is the
// embedded default; postgres is available for shared deployments.
func New(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (Store, error) {
	if cfg == nil {
		return nil, errors.New("store configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	switch cfg.Driver {
	case "sqlite", "postgres":
		return newSQLStore(ctx, cfg.Driver, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

var keyUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// DatasetKey derives a stable store key from an arbitrary name, typically an
// uploaded file name: transliterate to ASCII, lowercase, and collapse
// anything unsafe to single dashes.
func DatasetKey(name string) string {
	k := unidecode.Unidecode(name)
	k = strings.ToLower(strings.TrimSpace(k))
	k = keyUnsafe.ReplaceAllString(k, "-")
	k = strings.Trim(k, "-")
	if k == "" {
		return "dataset"
	}
	return k
}
