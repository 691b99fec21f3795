package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vsx-labs/vsx/internal/branding"
	"github.com/vsx-labs/vsx/internal/config"
	"github.com/vsx-labs/vsx/internal/registry"
	"github.com/vsx-labs/vsx/internal/transport"
	"github.com/vsx-labs/vsx/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagRegistry string
	flagTarget   string
	flagVerbose  bool
)

// logger is shared by all commands; level is set in PersistentPreRun.
var logger = newLogger(os.Stderr, log.WarnLevel)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` queries Open-VSX-compatible extension registries: search for
extensions, inspect their metadata and manifests, and resolve the newest
version compatible with a given host application version.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}

		config.Load()

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "Registry base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", "", "Host version for compatibility checks (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// newClient builds a registry client from config and persistent flags.
func newClient() *registry.Client {
	baseURL := config.RegistryURL()
	if flagRegistry != "" {
		baseURL = flagRegistry
	}
	apiVersion := config.APIVersion()
	if flagTarget != "" {
		apiVersion = flagTarget
	}

	t := transport.New(transport.WithLogger(logger))
	return registry.New(registry.Config{APIVersion: apiVersion, BaseURL: baseURL}, t, registry.WithLogger(logger))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}
