package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vsx-labs/vsx/internal/manifest"
)

var manifestJSON bool

var manifestCmd = &cobra.Command{
	Use:   "manifest <namespace.name>",
	Short: "Fetch and validate an extension's package manifest",
	Long: `Fetch the package.json of the extension's latest version from the
registry, validate it against the extension manifest schema, and report
any issues found.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().BoolVar(&manifestJSON, "json", false, "Print the raw manifest JSON")
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	client := newClient()
	ext, err := client.GetExtension(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	url, ok := ext.Files["manifest"]
	if !ok || url == "" {
		return fmt.Errorf("version %s of %s has no manifest URL", ext.Version, ext.ID())
	}

	raw, err := client.FetchText(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("fetching manifest from %s: %w", url, err)
	}

	if manifestJSON {
		fmt.Println(raw)
		return nil
	}

	m, err := manifest.Parse([]byte(raw))
	if err != nil {
		return err
	}

	result, err := manifest.Validate([]byte(raw))
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}

	fmt.Printf("%s %s (engine range %s)\n", m.ID(), m.Version, m.EngineRange())
	if result.Valid {
		fmt.Println("Manifest is valid")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Manifest has %d issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(os.Stderr, "  %s: %s\n", loc, issue.Message)
	}
	return fmt.Errorf("manifest validation failed")
}
