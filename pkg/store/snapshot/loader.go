package snapshot

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// Loader reads one point-in-time snapshot of the four input collections.
type Loader interface {
	Load(ctx context.Context) (store.Snapshot, error)
}

// LoadError reports a snapshot that could not be read. Collection is empty when the
// failure is not tied to a single collection.
type LoadError struct {
	Collection string
	Err        error
}

func (e *LoadError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("load snapshot: %v", e.Err)
	}
	return fmt.Sprintf("load snapshot collection %s: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadOrEmpty degrades a failed load to an empty snapshot carrying the failure as a
// diagnostic. With strict set, the failure is returned as a *LoadError instead.
func LoadOrEmpty(ctx context.Context, loader Loader, strict bool) (store.Snapshot, error) {
	snap, err := loader.Load(ctx)
	if err == nil {
		return snap, nil
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		loadErr = &LoadError{Err: err}
	}
	if strict {
		return store.Snapshot{}, loadErr
	}

	zerolog.Ctx(ctx).Warn().Err(err).Msg("snapshot unavailable, continuing with empty data")
	return store.Snapshot{Diagnostics: []string{loadErr.Error()}}, nil
}

// readFunc returns the named collection, or a nil collection when it does not exist.
type readFunc func(ctx context.Context, name string) (store.Collection, error)

// readCollections reads every collection independently. A failed read leaves that
// collection empty and is recorded in the snapshot diagnostics.
func readCollections(ctx context.Context, read readFunc) store.Snapshot {
	logger := zerolog.Ctx(ctx)
	var snap store.Snapshot

	// get reports false only when the collection is absent, so a broken salesDetails
	// is not replaced by products.
	get := func(name string) (store.Collection, bool) {
		c, err := read(ctx, name)
		if err != nil {
			logger.Warn().Err(err).Str("collection", name).Msg("collection unreadable, treating as empty")
			snap.Diagnostics = append(snap.Diagnostics, (&LoadError{Collection: name, Err: err}).Error())
			return nil, true
		}
		return c, c != nil
	}

	snap.Commissions, _ = get(store.CollectionCommissions)
	snap.Users, _ = get(store.CollectionUsers)
	snap.Trainings, _ = get(store.CollectionTrainings)

	var found bool
	if snap.SalesDetails, found = get(store.CollectionSalesDetails); !found {
		snap.SalesDetails, _ = get(store.CollectionProducts)
	}

	return snap
}
