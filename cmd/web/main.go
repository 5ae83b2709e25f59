package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/config"
	"github.com/de-tools/sales-atlas/pkg/metrics"
	"github.com/de-tools/sales-atlas/pkg/runtime/export"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the application config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loader, release, err := commands.OpenLoader(ctx, cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open snapshot source: %w", err)
	}
	defer release()

	collector := metrics.NewCollector()
	exporters := export.DefaultRegistry()
	generator := report.NewGenerator(report.Dependencies{
		Loader:    loader,
		Exporters: exporters,
		Metrics:   collector,
	}, report.Settings{
		Currency: cfg.Report.Currency,
		Strict:   cfg.Source.Strict,
	})

	if cfg.Source.Snapshot != "" {
		logger.Info().Msgf("Serving reports from snapshot `%s`.", cfg.Source.Snapshot)
	} else {
		logger.Info().Msgf("Serving reports from profile `%s` in `%s`.", cfg.Source.Profile, cfg.Source.ProfilesFile)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Dependencies: server.Dependencies{
			Reports:   generator,
			Exporters: exporters,
			Metrics:   collector,
			Logger:    logger,
		},
	})

	return api.Start()
}
