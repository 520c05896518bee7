package cmd

import (
	"github.com/mj1618/macos-haptics/internal/output"
	"github.com/spf13/cobra"
)

var supportedCmd = &cobra.Command{
	Use:   "is-supported",
	Short: "Report whether haptic feedback is available",
	Long: `Report whether a haptic feedback performer is available.

Never fails: transport or handler errors are logged and reported as
"supported: false".`,
	RunE: runSupported,
}

func init() {
	rootCmd.AddCommand(supportedCmd)
}

func runSupported(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, release, err := newClient(cmd.Context(), cfg)
	if err != nil {
		cfg.NewLogger().Warn("haptics support probe failed, treating as unsupported", "error", err)
		return output.Print(output.SupportResult{Supported: false, Server: cfg.Server})
	}
	defer release()

	return output.Print(output.SupportResult{
		Supported: client.IsSupported(cmd.Context()),
		Server:    cfg.Server,
	})
}
