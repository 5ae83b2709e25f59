package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const selectCollection = `
		SELECT id, payload
		FROM snapshot_records
		WHERE collection = ?
		ORDER BY seq`

// SQLLoader reads collections from the snapshot_records table of any database/sql handle.
type SQLLoader struct {
	db    *sql.DB
	owned bool
}

func NewSQLLoader(db *sql.DB) *SQLLoader {
	return &SQLLoader{db: db}
}

func (l *SQLLoader) Load(ctx context.Context) (store.Snapshot, error) {
	if l.db == nil {
		return store.Snapshot{}, &LoadError{Err: fmt.Errorf("database connection is nil")}
	}
	if err := l.db.PingContext(ctx); err != nil {
		return store.Snapshot{}, &LoadError{Err: fmt.Errorf("ping database: %w", err)}
	}
	return readCollections(ctx, l.readCollection), nil
}

// Close releases the database when the loader opened it itself.
func (l *SQLLoader) Close() error {
	if !l.owned {
		return nil
	}
	return l.db.Close()
}

// readCollection treats a collection without rows as absent.
func (l *SQLLoader) readCollection(ctx context.Context, name string) (store.Collection, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := l.db.QueryContext(ctx, selectCollection, name)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Str("collection", name).Msg("failed to close snapshot rows")
		}
	}(rows)

	var c store.Collection
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		c = append(c, store.Entry{ID: id, Raw: json.RawMessage(payload)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return c, nil
}
