package domain

import "fmt"

type SourceType string

const (
	SourceTypeFile     SourceType = "file"
	SourceTypeFirebase SourceType = "firebase"
	SourceTypeDuckDB   SourceType = "duckdb"
)

// SourceProfile names one place a snapshot can be read from.
type SourceProfile struct {
	Name        string
	Type        SourceType
	Path        string // file and duckdb
	DatabaseURL string // firebase
	Credentials string // firebase service account file
	Root        string // firebase path prefix
}

func (s SourceProfile) String() string {
	return fmt.Sprintf("%s:%s", s.Type, s.Name)
}
