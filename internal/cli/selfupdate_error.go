// Package cli holds error types shared by the cmd package that don't belong
// to any single subcommand.
package cli

import "fmt"

// SelfUpdateError reports a problem checking for or applying a self-update,
// in the same shape as config.ConfigurationError: enough context for
// getExitCode to classify it as an infrastructure failure rather than a
// test-run failure, and for the user to see what step failed.
type SelfUpdateError struct {
	Repo    string // GitHub owner/repo slug being checked
	Message string
	Cause   error
}

func (e SelfUpdateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("self-update %s: %s: %v", e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("self-update %s: %s", e.Repo, e.Message)
}

func (e SelfUpdateError) Unwrap() error { return e.Cause }
