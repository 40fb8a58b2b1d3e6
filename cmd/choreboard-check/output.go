package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// outputJSON writes v as JSON to the command's stdout.
func outputJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compactFlag {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// readInputs returns args, or stdin as a single input when args is empty.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return []string{strings.TrimRight(string(data), "\r\n")}, nil
}
