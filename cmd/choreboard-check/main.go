// Package main provides the choreboard-check CLI. It runs payloads through
// the same schemas and sanitizer the service uses, so form fixtures and
// suspicious input can be checked without a backend.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/choreboard/pkg/config"
	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/svc/board"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	envFile      string
	lenientFlag  bool
	strictFlag   bool
	testIDsFlag  bool
	compactFlag  bool
	verboseFlag  bool
	log          = slog.New(slog.DiscardHandler)
	loadedConfig board.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := ExitError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
			if ee.err == nil {
				os.Exit(code)
			}
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(code)
	}
}

var rootCmd = &cobra.Command{
	Use:   "choreboard-check",
	Short: "Validate and sanitize ChoreBoard payloads",
	Long: `choreboard-check runs JSON payloads through the ChoreBoard form schemas
and the text sanitizer, printing the {success, data | error} envelope.

Configuration is read from the environment (APP_ENV, PASSWORD_POLICY,
ALLOW_TEST_IDS, LOG_LEVEL, LOG_FORMAT) and an optional .env file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")
	rootCmd.PersistentFlags().BoolVar(&lenientFlag, "lenient", false, "Apply only length bounds to new passwords")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Apply the full password strength policy")
	rootCmd.PersistentFlags().BoolVar(&testIDsFlag, "test-ids", false, "Accept token identifiers such as task-1")
	rootCmd.PersistentFlags().BoolVar(&compactFlag, "compact", false, "Print compact JSON")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("lenient", "strict")
	rootCmd.Version = Version
}

func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return withExitCode(ExitConfigError, err)
		}
	}
	config.ResetCache()
	if err := config.Load(&loadedConfig); err != nil {
		return withExitCode(ExitConfigError, err)
	}

	if verboseFlag {
		log = loadedConfig.Logger(cmd.ErrOrStderr())
	}
	log.Debug("configuration loaded",
		slog.String("env", loadedConfig.Environment().String()),
		slog.Bool("lenient_passwords", lenientPasswords()),
		slog.Bool("test_ids", testIDs()),
	)
	return nil
}

func lenientPasswords() bool {
	switch {
	case lenientFlag:
		return true
	case strictFlag:
		return false
	}
	return loadedConfig.LenientPasswords()
}

func testIDs() bool {
	return testIDsFlag || loadedConfig.AllowTestIDs
}

// formSet builds the schema set from config and flags.
func formSet() *forms.Set {
	var opts []forms.Option
	if lenientPasswords() {
		opts = append(opts, forms.WithLenientPasswords())
	}
	if testIDs() {
		opts = append(opts, forms.WithTestIDs())
	}
	return forms.New(opts...)
}
