package cmd

import (
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/output"
	"github.com/spf13/cobra"
)

var performCmd = &cobra.Command{
	Use:   "perform",
	Short: "Perform haptic feedback",
	Long: `Perform haptic feedback on the Force Touch trackpad.

Feedback is only felt while a finger rests on the trackpad and haptics are
enabled in System Settings; a successful result means the request was
accepted, not that it was felt.

Examples:
  haptics perform
  haptics perform --pattern alignment --time now
  haptics perform --pattern level-change --time draw-completed --server ws://localhost:8080/ws`,
	RunE: runPerform,
}

func init() {
	rootCmd.AddCommand(performCmd)
	performCmd.Flags().String("pattern", "generic", "Pattern: alignment, level-change, generic")
	performCmd.Flags().String("time", "default", "Performance time: default, now, draw-completed")
}

func runPerform(cmd *cobra.Command, args []string) error {
	patternFlag, _ := cmd.Flags().GetString("pattern")
	timeFlag, _ := cmd.Flags().GetString("time")

	pattern, err := haptics.ParsePattern(patternFlag)
	if err != nil {
		return err
	}
	at, err := haptics.ParsePerformanceTime(timeFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, release, err := newClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	result := output.PerformResult{OK: true, Pattern: pattern.String(), PerformanceTime: at.String()}
	perr := client.Perform(cmd.Context(), haptics.WithPattern(pattern), haptics.At(at))
	if perr != nil {
		result.OK = false
		result.Error = perr.Error()
	}
	if err := output.Print(result); err != nil {
		return err
	}
	return perr
}
