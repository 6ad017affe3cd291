// pkg/store/sqlstore.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // embedded sqlite driver

	"github.com/qoriq-io/dq-engine/pkg/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	dataset_key TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	row_count INTEGER NOT NULL,
	saved_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS fix_operations (
	run_id TEXT NOT NULL,
	column_name TEXT NOT NULL,
	original_value TEXT,
	new_value TEXT NOT NULL,
	row_identifier TEXT NOT NULL,
	operation TEXT NOT NULL,
	reason TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL
);
`

// sqlStore backs the Store interface with any database/sql driver sqlx can
// rebind for. Queries are written with ? placeholders and rebound per driver.
type sqlStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func newSQLStore(ctx context.Context, driver, dsn string, logger *zap.Logger) (*sqlStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", driver, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure store schema: %w", err)
	}

	logger.Info("Opened dataset store", zap.String("driver", driver))
	return &sqlStore{db: db, logger: logger}, nil
}

// storedRow is the serialized form of a row, metadata included, so a loaded
// dataset can still answer questions about the fixes it received.
type storedRow struct {
	Columns []string          `json:"columns"`
	Cells   map[string]string `json:"cells"`
	Meta    *model.RowMeta    `json:"meta,omitempty"`
}

func (s *sqlStore) SaveDataset(ctx context.Context, key string, rows []model.Row) error {
	stored := make([]storedRow, len(rows))
	for i, r := range rows {
		stored[i] = storedRow{Columns: r.Columns, Cells: r.Cells, Meta: r.Meta}
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to serialize dataset %q: %w", key, err)
	}

	query := s.db.Rebind(`
		INSERT INTO datasets (dataset_key, payload, row_count, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (dataset_key) DO UPDATE SET
			payload = excluded.payload,
			row_count = excluded.row_count,
			saved_at = excluded.saved_at`)

	if _, err := s.db.ExecContext(ctx, query, key, string(payload), len(rows), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save dataset %q: %w", key, err)
	}

	s.logger.Info("Saved dataset", zap.String("key", key), zap.Int("rows", len(rows)))
	return nil
}

func (s *sqlStore) LoadDataset(ctx context.Context, key string) ([]model.Row, bool, error) {
	var payload string
	query := s.db.Rebind(`SELECT payload FROM datasets WHERE dataset_key = ?`)

	err := s.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load dataset %q: %w", key, err)
	}

	var stored []storedRow
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		// A corrupt payload is "no data" to the caller, per the retrieval
		// contract, but worth a warning in the log.
		s.logger.Warn("Discarding unreadable dataset payload",
			zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}

	rows := make([]model.Row, len(stored))
	for i, sr := range stored {
		rows[i] = model.Row{Columns: sr.Columns, Cells: sr.Cells, Meta: sr.Meta}
		if rows[i].Cells == nil {
			rows[i].Cells = make(map[string]string)
		}
	}
	return rows, true, nil
}

func (s *sqlStore) RecordFixOperations(ctx context.Context, runID string, ops []model.FixOperation) error {
	if len(ops) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				s.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.Error(err))
			}
		}
	}()

	stmt, err := tx.PreparexContext(ctx, s.db.Rebind(`
		INSERT INTO fix_operations
		(run_id, column_name, original_value, new_value, row_identifier, operation, reason, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, op := range ops {
		if _, err = stmt.ExecContext(ctx,
			runID,
			op.Column,
			op.OriginalValue,
			op.NewValue,
			op.RowIdentifier,
			op.Operation,
			op.Reason,
			op.AppliedAt.UTC(),
		); err != nil {
			return fmt.Errorf("failed to insert fix operation: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Recorded fix operations",
		zap.String("run_id", runID),
		zap.Int("count", len(ops)))
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
