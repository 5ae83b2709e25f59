package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/records"
	"github.com/de-tools/sales-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored snapshots",
	}

	cmd.AddCommand(NewImportCmd())

	return cmd
}

type ImportCmd struct {
	snapshotPath string
	dbPath       string
}

func NewImportCmd() *cobra.Command {
	ic := &ImportCmd{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON export into a DuckDB database usable as a duckdb source",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.snapshotPath, "snapshot", "", "Path to the JSON export")
	cmd.Flags().StringVar(&ic.dbPath, "db", "", "Path to the DuckDB database file")

	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	snap, err := snapshot.LoadOrEmpty(ctx, snapshot.NewFileLoader(ic.snapshotPath), true)
	if err != nil {
		return err
	}
	// Importing replaces whole collections, so an unreadable one would erase stored records.
	if len(snap.Diagnostics) > 0 {
		return fmt.Errorf("refusing to import %s: %s", ic.snapshotPath, strings.Join(snap.Diagnostics, "; "))
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	recordStore, err := records.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}
	if err := recordStore.Import(ctx, snap); err != nil {
		return err
	}

	counts, err := recordStore.Counts(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %s into %s\n", ic.snapshotPath, ic.dbPath)
	for _, name := range []string{
		store.CollectionCommissions,
		store.CollectionUsers,
		store.CollectionTrainings,
		store.CollectionSalesDetails,
	} {
		fmt.Fprintf(out, "  %-12s %d\n", name, counts[name])
	}
	return nil
}
