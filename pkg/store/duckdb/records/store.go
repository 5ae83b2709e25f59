package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store persists snapshot collections in the snapshot_records table. Each collection is
// replaced as a whole on import, and seq keeps the source key order.
type Store interface {
	Import(ctx context.Context, snap store.Snapshot) error
	Counts(ctx context.Context) (map[string]int64, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

// Import runs in the transaction carried by ctx, or opens its own when there is none.
func (s *recordStore) Import(ctx context.Context, snap store.Snapshot) error {
	return duckdb.InTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.importTx(ctx, tx, snap)
	})
}

func (s *recordStore) importTx(ctx context.Context, tx *sql.Tx, snap store.Snapshot) error {
	logger := zerolog.Ctx(ctx)

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_records (collection, id, seq, payload)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, name := range []string{
		store.CollectionCommissions,
		store.CollectionUsers,
		store.CollectionTrainings,
		store.CollectionSalesDetails,
	} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_records WHERE collection = ?`, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}

		collection := snap.Named()[name]
		for seq, e := range collection {
			if _, err := stmt.ExecContext(ctx, name, e.ID, seq, string(e.Raw)); err != nil {
				return fmt.Errorf("insert %s/%s: %w", name, e.ID, err)
			}
		}
		logger.Debug().Str("collection", name).Int("records", len(collection)).Msg("imported collection")
	}

	return nil
}

func (s *recordStore) Counts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT collection, COUNT(*) AS records
		FROM snapshot_records
		GROUP BY collection`)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			collection string
			n          int64
		)
		if err := rows.Scan(&collection, &n); err != nil {
			return nil, err
		}
		counts[collection] = n
	}
	return counts, rows.Err()
}
