package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"movetest/internal/bootstrap"
	"movetest/internal/cli"
	"movetest/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, and every test in
	// the run passed.
	ExitCodeSuccess = 0
	// ExitCodeTestFailure indicates the run completed with one or more
	// failing tests.
	ExitCodeTestFailure = 1
	// ExitCodeError indicates the run itself could not complete
	// (configuration, bootstrap, or other infrastructure failure).
	ExitCodeError = 2
)

// rootCmd is the base command for the movetest CLI.
var rootCmd = &cobra.Command{
	Use:   "movetest",
	Short: "Run unit tests for a bytecode-based smart-contract module",
	Long: `movetest executes a compiled test plan against a bytecode
interpreter (and, optionally, a reference interpreter for cross-backend
checking), reporting pass/fail/timeout status per test and a final
statistics summary.`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command, injected at build time.
func SetVersion(v string) { rootCmd.Version = v }

// GetVersion returns the current version of the application.
func GetVersion() string { return rootCmd.Version }

// Execute is the main entry point for the CLI, called from main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "movetest version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps a typed error to a process exit code (§7): a
// CycleError, ConfigurationError, or SelfUpdateError is an infrastructure
// failure, distinct from a run that completed with failing tests.
func getExitCode(err error) int {
	var cycleErr *bootstrap.CycleError
	if errors.As(err, &cycleErr) {
		return ExitCodeError
	}

	var configErr config.ConfigurationError
	if errors.As(err, &configErr) {
		return ExitCodeError
	}

	var selfUpdateErr cli.SelfUpdateError
	if errors.As(err, &selfUpdateErr) {
		return ExitCodeError
	}

	if errors.Is(err, errTestsFailed) {
		return ExitCodeTestFailure
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newMCPServeCmd())
}
