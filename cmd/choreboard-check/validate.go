package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/choreboard/pkg/async"
	"github.com/dmitrymomot/choreboard/pkg/schema"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <schema> [payload...]",
	Short: "Validate payloads against a named schema",
	Long: `Validate runs each payload through the named schema and prints the
{success, data | error} envelope. Payloads are JSON; anything that does not
parse as JSON is validated as a plain string. Without payload arguments a
single payload is read from stdin.

Several payloads are validated concurrently and printed as an array in
argument order. The exit status is 3 when any payload fails.`,
	Example: `  choreboard-check validate sign-in '{"email":"jane@example.com"}'
  choreboard-check validate priority H bogus
  echo '{"name":"Household"}' | choreboard-check validate create-project`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := lookupSchema(formSet(), args[0])
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args[1:])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	futures := make([]*async.Future[schema.Result[any]], len(inputs))
	for i, in := range inputs {
		futures[i] = schema.ValidateAsync(ctx, s, decodePayload(in))
	}
	results, err := async.WaitAll(futures...)
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if !res.Success {
			failed++
			log.Debug("payload rejected",
				slog.String("schema", args[0]),
				slog.Int("index", i),
				slog.String("reason", res.Error),
			)
		}
	}

	if len(results) == 1 {
		err = outputJSON(cmd, results[0])
	} else {
		err = outputJSON(cmd, results)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return withExitCode(ExitInvalid, nil)
	}
	return nil
}

// decodePayload parses JSON, falling back to the raw string.
func decodePayload(in string) any {
	var v any
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		return in
	}
	return v
}
