package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/macos-haptics/internal/output"
	"github.com/mj1618/macos-haptics/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "haptics",
	Short: "Trigger macOS trackpad haptic feedback",
	Long: `A CLI and command server for macOS haptic feedback (NSHapticFeedbackManager).

Commands run against the local Force Touch trackpad by default. With --server they
are sent to a running "haptics serve" instance instead:

  ws://host:port/ws      WebSocket invoke endpoint
  http://host:port/mcp   streamable-http MCP server`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	addClientFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
