package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
)

// Sanitizer modes.
const (
	modeText   = "text"
	modeSearch = "search"
	modeEmail  = "email"
)

var sanitizeMode string

func init() {
	sanitizeCmd.Flags().StringVarP(&sanitizeMode, "mode", "m", modeText, "Sanitizer to apply: text, search or email")
	rootCmd.AddCommand(sanitizeCmd)
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [text...]",
	Short: "Show what the sanitizer leaves of the given text",
	Example: `  choreboard-check sanitize "<script>alert('XSS')</script>hello"
  choreboard-check sanitize --mode search "＜b＞dishes＜/b＞"`,
	RunE: runSanitize,
}

// SanitizeResult is printed for each input.
type SanitizeResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
	// Markers reports whether the input carried injection markers.
	Markers bool `json:"markers"`
}

func runSanitize(cmd *cobra.Command, args []string) error {
	fn, err := sanitizerFor(sanitizeMode)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]SanitizeResult, 0, len(inputs))
	for _, in := range inputs {
		out := fn(in)
		results = append(results, SanitizeResult{
			Input:   in,
			Output:  out,
			Changed: out != in,
			Markers: sanitizer.ContainsInjectionMarkers(in),
		})
	}

	if len(results) == 1 {
		return outputJSON(cmd, results[0])
	}
	return outputJSON(cmd, results)
}

func sanitizerFor(mode string) (func(string) string, error) {
	switch mode {
	case modeText:
		return sanitizer.SanitizeText, nil
	case modeSearch:
		return sanitizer.SanitizeSearchQuery, nil
	case modeEmail:
		return sanitizer.NormalizeEmail, nil
	}
	return nil, fmt.Errorf("unknown sanitizer mode %q: must be %s, %s or %s", mode, modeText, modeSearch, modeEmail)
}
