package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <namespace.name>",
	Short: "Download the newest compatible version of an extension",
	Long: `Resolve the newest version compatible with the configured host version
and download its .vsix package to the current directory (or --output).`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "Output file path")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	client := newClient()
	ext, err := client.GetLatestCompatibleExtensionVersion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if ext == nil {
		return fmt.Errorf("no version of %s is compatible with host version %s", args[0], client.Config().APIVersion)
	}

	url, ok := ext.Files["download"]
	if !ok || url == "" {
		return fmt.Errorf("version %s of %s has no download URL", ext.Version, ext.ID())
	}

	logger.Debug("downloading package", "url", url)
	body, err := client.FetchText(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}

	path := downloadOutput
	if path == "" {
		path = fmt.Sprintf("%s-%s.vsix", ext.ID(), ext.Version)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Downloaded %s %s to %s\n", ext.ID(), ext.Version, path)
	return nil
}
