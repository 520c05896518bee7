package cmd

import (
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/output"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List feedback patterns and performance times with their wire values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(vocabulary())
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func vocabulary() output.VocabularyResult {
	var v output.VocabularyResult
	for _, p := range haptics.Patterns {
		v.Patterns = append(v.Patterns, output.VocabularyEntry{Name: p.String(), Wire: int(p)})
	}
	for _, t := range haptics.PerformanceTimes {
		v.PerformanceTimes = append(v.PerformanceTimes, output.VocabularyEntry{Name: t.String(), Wire: int(t)})
	}
	return v
}
