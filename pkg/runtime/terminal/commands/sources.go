package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	profiles "github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

func NewSourcesCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect snapshot source profiles",
	}

	cmd.AddCommand(NewSourcesListCmd(rt))

	return cmd
}

type SourcesListCmd struct {
	profilesFile string
	rt           *Runtime
}

func NewSourcesListCmd(rt *Runtime) *cobra.Command {
	lc := &SourcesListCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the profiles defined in the profiles file",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.profilesFile, "profiles-file", "", "Path to the source profiles file (default is $HOME/.atlascfg)")

	return cmd
}

func (lc *SourcesListCmd) run(cmd *cobra.Command, _ []string) error {
	path := lc.rt.Config.Source.ProfilesFile
	if cmd.Flags().Changed("profiles-file") {
		path = lc.profilesFile
	}

	registry, err := profiles.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}
	list, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintf(out, "No profiles found in %s\n", path)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tLOCATION")
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Type, location(p))
	}
	return w.Flush()
}

func location(p domain.SourceProfile) string {
	if p.Type == domain.SourceTypeFirebase {
		if p.Root != "" {
			return p.DatabaseURL + "/" + p.Root
		}
		return p.DatabaseURL
	}
	return p.Path
}
