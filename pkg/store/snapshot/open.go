package snapshot

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
)

// CredentialsEnv may hold a base64 encoded service account key for firebase sources.
const CredentialsEnv = "FIREBASE_CREDENTIALS_BASE64"

// Open builds the loader for a source profile. Loaders that hold a connection implement
// io.Closer.
func Open(ctx context.Context, profile domain.SourceProfile) (Loader, error) {
	switch profile.Type {
	case domain.SourceTypeFile:
		if profile.Path == "" {
			return nil, fmt.Errorf("profile %s: path is required", profile.Name)
		}
		return NewFileLoader(profile.Path), nil

	case domain.SourceTypeFirebase:
		settings := FirebaseSettings{
			DatabaseURL:     profile.DatabaseURL,
			CredentialsFile: profile.Credentials,
			Root:            profile.Root,
		}
		if encoded := os.Getenv(CredentialsEnv); encoded != "" {
			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", CredentialsEnv, err)
			}
			settings.CredentialsJSON = decoded
		}
		loader, err := NewFirebaseLoader(ctx, settings)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
		}
		return loader, nil

	case domain.SourceTypeDuckDB:
		if profile.Path == "" {
			return nil, fmt.Errorf("profile %s: path is required", profile.Name)
		}
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.Path})
		if err != nil {
			return nil, fmt.Errorf("profile %s: open duckdb: %w", profile.Name, err)
		}
		return &SQLLoader{db: db, owned: true}, nil

	default:
		return nil, fmt.Errorf("profile %s: unsupported source type %q", profile.Name, profile.Type)
	}
}
