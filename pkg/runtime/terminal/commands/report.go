package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/config"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/export"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/summary"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewReportCmd(rt *Runtime, reporter *summary.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
	}

	cmd.AddCommand(NewGenerateCmd(rt))
	cmd.AddCommand(NewSummaryCmd(rt, reporter))

	return cmd
}

type GenerateCmd struct {
	source   sourceFlags
	formats  string
	outDir   string
	s3Bucket string
	currency string
	rt       *Runtime
}

func NewGenerateCmd(rt *Runtime) *cobra.Command {
	gc := &GenerateCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report and export it in every requested format",
		RunE:  gc.run,
	}

	gc.source.register(cmd)
	cmd.Flags().StringVar(&gc.formats, "format", "", "Comma separated formats: json, csv, html or all")
	cmd.Flags().StringVar(&gc.outDir, "out", "", "Directory the exports are written to")
	cmd.Flags().StringVar(&gc.s3Bucket, "s3-bucket", "", "Also upload the exports to this S3 bucket")
	cmd.Flags().StringVar(&gc.currency, "currency", "", "Currency code printed with monetary values")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := *gc.rt.Config

	gc.source.apply(cmd, &cfg.Source)
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = gc.outDir
	}
	if cmd.Flags().Changed("s3-bucket") {
		cfg.S3.Bucket = gc.s3Bucket
	}
	if cmd.Flags().Changed("currency") {
		cfg.Report.Currency = strings.ToUpper(gc.currency)
	}

	formatList := cfg.Output.FormatList()
	if cmd.Flags().Changed("format") {
		formatList = gc.formats
	}
	formats, err := export.ParseFormats(formatList)
	if err != nil {
		return err
	}

	sinks, err := Sinks(ctx, &cfg)
	if err != nil {
		return err
	}

	generator, release, err := newGenerator(cmd, gc.rt, cfg.Source, cfg.Report.Currency)
	if err != nil {
		return err
	}
	defer release()

	rep, err := generator.Generate(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, s := range sinks {
		for _, r := range generator.Publish(ctx, rep, s, formats...) {
			if r.Err != nil {
				failed++
				fmt.Fprintf(out, "%-5s FAILED  %v\n", r.Format, r.Err)
				continue
			}
			fmt.Fprintf(out, "%-5s written %s\n", r.Format, r.Location)
		}
	}
	printWarnings(out, rep)

	if failed > 0 {
		return fmt.Errorf("%d export(s) failed", failed)
	}
	return nil
}

type SummaryCmd struct {
	source   sourceFlags
	rt       *Runtime
	reporter *summary.Reporter
}

func NewSummaryCmd(rt *Runtime, reporter *summary.Reporter) *cobra.Command {
	sc := &SummaryCmd{rt: rt, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the report summary to the terminal",
		RunE:  sc.run,
	}

	sc.source.register(cmd)

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	cfg := *sc.rt.Config
	sc.source.apply(cmd, &cfg.Source)

	generator, release, err := newGenerator(cmd, sc.rt, cfg.Source, cfg.Report.Currency)
	if err != nil {
		return err
	}
	defer release()

	rep, err := generator.Generate(cmd.Context())
	if err != nil {
		return err
	}
	return sc.reporter.Handle(&rep)
}

func newGenerator(
	cmd *cobra.Command,
	rt *Runtime,
	source config.SourceConfig,
	currency string,
) (*report.DefaultGenerator, func(), error) {
	loader, release, err := OpenLoader(cmd.Context(), source)
	if err != nil {
		return nil, nil, err
	}

	generator := report.NewGenerator(report.Dependencies{
		Loader:  loader,
		Metrics: rt.Metrics,
	}, report.Settings{
		Currency: currency,
		Strict:   source.Strict,
	})
	return generator, release, nil
}

func printWarnings(w io.Writer, rep domain.Report) {
	for _, warning := range rep.Metadata.DataWarnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
