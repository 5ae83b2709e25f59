package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/config"
	"github.com/de-tools/sales-atlas/pkg/metrics"
	profiles "github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/store/sink"
	"github.com/de-tools/sales-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

// Runtime is shared by every command. The root command fills Config before a
// subcommand runs.
type Runtime struct {
	Config  *config.Config
	Metrics metrics.Recorder
}

// sourceFlags selects the snapshot a command reads.
type sourceFlags struct {
	profile      string
	profilesFile string
	snapshot     string
	strict       bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "Source profile name from the profiles file")
	cmd.Flags().StringVar(&f.profilesFile, "profiles-file", "", "Path to the source profiles file (default is $HOME/.atlascfg)")
	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", "Read a JSON export instead of a source profile")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail instead of reporting on empty data when the source cannot be read")
}

// apply copies the flags the user set over the loaded configuration.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.SourceConfig) {
	if cmd.Flags().Changed("profile") {
		cfg.Profile = f.profile
	}
	if cmd.Flags().Changed("profiles-file") {
		cfg.ProfilesFile = f.profilesFile
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot = f.snapshot
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = f.strict
	}
}

// OpenLoader returns the loader for the configured source and a function that releases it.
func OpenLoader(ctx context.Context, cfg config.SourceConfig) (snapshot.Loader, func(), error) {
	if cfg.Snapshot != "" {
		return snapshot.NewFileLoader(cfg.Snapshot), func() {}, nil
	}

	registry, err := profiles.NewRegistry(cfg.ProfilesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profiles file %s: %w", cfg.ProfilesFile, err)
	}
	profile, err := registry.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return nil, nil, err
	}

	loader, err := snapshot.Open(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	release := func() {}
	if closer, ok := loader.(io.Closer); ok {
		release = func() { _ = closer.Close() }
	}
	return loader, release, nil
}

// Sinks returns the local output directory sink, followed by an S3 sink when a bucket
// is configured.
func Sinks(ctx context.Context, cfg *config.Config) ([]sink.Sink, error) {
	sinks := []sink.Sink{sink.NewFileSink(cfg.Output.Dir)}
	if cfg.S3.Bucket == "" {
		return sinks, nil
	}

	s3Sink, err := sink.NewS3Sink(ctx, sink.S3Settings{
		Bucket:       cfg.S3.Bucket,
		Prefix:       cfg.S3.Prefix,
		Region:       cfg.S3.Region,
		Endpoint:     cfg.S3.Endpoint,
		UsePathStyle: cfg.S3.Endpoint != "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 sink: %w", err)
	}
	return append(sinks, s3Sink), nil
}
