package output

import (
	"fmt"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// SupportResult is the output of the `is-supported` command.
type SupportResult struct {
	Supported bool   `yaml:"supported"        json:"supported"`
	Server    string `yaml:"server,omitempty" json:"server,omitempty"`
}

// PerformResult is the output of the `perform` command.
type PerformResult struct {
	OK              bool   `yaml:"ok"              json:"ok"`
	Pattern         string `yaml:"pattern"         json:"pattern"`
	PerformanceTime string `yaml:"performanceTime" json:"performanceTime"`
	Error           string `yaml:"error,omitempty" json:"error,omitempty"`
}

// VocabularyEntry is one row of the `patterns` command.
type VocabularyEntry struct {
	Name string `yaml:"name" json:"name"`
	Wire int    `yaml:"wire" json:"wire"`
}

// VocabularyResult is the output of the `patterns` command.
type VocabularyResult struct {
	Patterns         []VocabularyEntry `yaml:"patterns"         json:"patterns"`
	PerformanceTimes []VocabularyEntry `yaml:"performanceTimes" json:"performanceTimes"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}
