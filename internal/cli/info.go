package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	infoJSON bool
	infoYAML bool
)

var infoCmd = &cobra.Command{
	Use:   "info <namespace.name>",
	Short: "Show metadata for an extension's latest version",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	infoCmd.Flags().BoolVar(&infoYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	client := newClient()
	ext, err := client.GetExtension(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if infoJSON {
		return printJSON(os.Stdout, ext)
	}
	if infoYAML {
		return printYAML(os.Stdout, ext)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Extension:\t%s\n", ext.ID())
	if ext.DisplayName != "" {
		fmt.Fprintf(w, "Display name:\t%s\n", ext.DisplayName)
	}
	fmt.Fprintf(w, "Version:\t%s\n", ext.Version)
	if rng, ok := ext.Engines["vscode"]; ok {
		fmt.Fprintf(w, "Engine range:\t%s\n", rng)
		fmt.Fprintf(w, "Compatible:\t%v\n", client.SupportsEngineRange(ext.Engines))
	}
	if ext.License != "" {
		fmt.Fprintf(w, "License:\t%s\n", ext.License)
	}
	if len(ext.Categories) > 0 {
		fmt.Fprintf(w, "Categories:\t%s\n", strings.Join(ext.Categories, ", "))
	}
	if ext.DownloadCount > 0 {
		fmt.Fprintf(w, "Downloads:\t%d\n", ext.DownloadCount)
	}
	if ext.AverageRating > 0 {
		fmt.Fprintf(w, "Rating:\t%.1f (%d reviews)\n", ext.AverageRating, ext.ReviewCount)
	}
	if ext.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", ext.Description)
	}
	w.Flush()
	return nil
}
