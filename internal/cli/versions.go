package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vsx-labs/vsx/internal/registry"
)

var versionsJSON bool

var versionsCmd = &cobra.Command{
	Use:   "versions <namespace.name>",
	Short: "List all published versions of an extension",
	Long: `List every published version of an extension in registry order
(newest first), with a compatibility verdict against the configured
host version for each.`,
	Args: cobra.ExactArgs(1),
	RunE: runVersions,
}

func init() {
	versionsCmd.Flags().BoolVar(&versionsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(versionsCmd)
}

// versionRow is one line of the versions table.
type versionRow struct {
	Version     string `json:"version"`
	EngineRange string `json:"engineRange,omitempty"`
	Compatible  bool   `json:"compatible"`
}

// versionRows builds the display rows for a version listing.
func versionRows(client *registry.Client, versions []registry.Extension) []versionRow {
	rows := make([]versionRow, 0, len(versions))
	for i := range versions {
		rows = append(rows, versionRow{
			Version:     versions[i].Version,
			EngineRange: versions[i].Engines["vscode"],
			Compatible:  client.SupportsEngineRange(versions[i].Engines),
		})
	}
	return rows
}

func runVersions(cmd *cobra.Command, args []string) error {
	client := newClient()
	versions, err := client.GetAllVersions(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rows := versionRows(client, versions)
	if versionsJSON {
		return printJSON(os.Stdout, rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tENGINE RANGE\tCOMPATIBLE")
	for _, row := range rows {
		rng := row.EngineRange
		if rng == "" {
			rng = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%v\n", row.Version, rng, row.Compatible)
	}
	w.Flush()
	return nil
}
