package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	latestJSON  bool
	latestQuiet bool
)

var latestCmd = &cobra.Command{
	Use:   "latest <namespace.name>",
	Short: "Resolve the newest version compatible with the host version",
	Long: `Resolve the newest published version of an extension whose declared
engine range is satisfied by the configured host version (see the
--target flag and the registry.api_version config key).

Exits with an error when no published version is compatible.`,
	Args: cobra.ExactArgs(1),
	RunE: runLatest,
}

func init() {
	latestCmd.Flags().BoolVar(&latestJSON, "json", false, "Output in JSON format")
	latestCmd.Flags().BoolVarP(&latestQuiet, "quiet", "q", false, "Print the version number only")
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	client := newClient()
	ext, err := client.GetLatestCompatibleExtensionVersion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if ext == nil {
		return fmt.Errorf("no version of %s is compatible with host version %s", args[0], client.Config().APIVersion)
	}

	if latestJSON {
		return printJSON(os.Stdout, ext)
	}
	if latestQuiet {
		fmt.Println(ext.Version)
		return nil
	}

	fmt.Printf("%s %s (engine range %s, host %s)\n", ext.ID(), ext.Version, ext.Engines["vscode"], client.Config().APIVersion)
	return nil
}
