package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/config"
	"github.com/de-tools/sales-atlas/pkg/metrics"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/summary"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	runtime    *commands.Runtime
	reporter   *summary.Reporter
	logOutput  io.Writer
	configPath string
	verbose    bool
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// LogOutput receives the console log. Defaults to stderr.
	LogOutput io.Writer
	Metrics   metrics.Recorder
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}

	cli := &CLI{
		runtime:   &commands.Runtime{Metrics: opts.Metrics},
		reporter:  summary.NewReporter(opts.Output),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:].
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "atlas",
		Short:             "Financial analytics and reporting",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to the application config file")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewReportCmd(cli.runtime, cli.reporter))
	cmd.AddCommand(commands.NewSourcesCmd(cli.runtime))
	cmd.AddCommand(commands.NewSnapshotCmd())

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if cli.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logOutput}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return err
	}
	cli.runtime.Config = cfg
	return nil
}
