package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"google.golang.org/api/option"
)

// OrderedReader returns the children of a database path sorted by key.
type OrderedReader interface {
	GetOrdered(ctx context.Context, path string) ([]db.QueryNode, error)
}

type FirebaseSettings struct {
	DatabaseURL string
	// CredentialsFile is a service account key file; CredentialsJSON takes precedence when set.
	CredentialsFile string
	CredentialsJSON []byte
	// Root is the path under which the collections live.
	Root string
}

// FirebaseLoader reads the collections from a Firebase Realtime Database. Push keys sort
// chronologically, so key order is insertion order.
type FirebaseLoader struct {
	reader OrderedReader
	root   string
}

func NewFirebaseLoader(ctx context.Context, settings FirebaseSettings) (*FirebaseLoader, error) {
	if settings.DatabaseURL == "" {
		return nil, fmt.Errorf("firebase database url is required")
	}

	var opts []option.ClientOption
	switch {
	case len(settings.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(settings.CredentialsJSON))
	case settings.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(settings.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: settings.DatabaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase database client: %w", err)
	}

	return NewFirebaseLoaderWithReader(&databaseReader{client: client}, settings.Root), nil
}

func NewFirebaseLoaderWithReader(reader OrderedReader, root string) *FirebaseLoader {
	return &FirebaseLoader{reader: reader, root: root}
}

func (l *FirebaseLoader) Load(ctx context.Context) (store.Snapshot, error) {
	return readCollections(ctx, func(ctx context.Context, name string) (store.Collection, error) {
		nodes, err := l.reader.GetOrdered(ctx, path.Join(l.root, name))
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			return nil, nil
		}

		c := make(store.Collection, 0, len(nodes))
		for _, node := range nodes {
			var raw json.RawMessage
			if err := node.Unmarshal(&raw); err != nil {
				return nil, fmt.Errorf("decode %s/%s: %w", name, node.Key(), err)
			}
			c = append(c, store.Entry{ID: node.Key(), Raw: raw})
		}
		return c, nil
	}), nil
}

type databaseReader struct {
	client *db.Client
}

func (r *databaseReader) GetOrdered(ctx context.Context, p string) ([]db.QueryNode, error) {
	return r.client.NewRef(p).OrderByKey().GetOrdered(ctx)
}
