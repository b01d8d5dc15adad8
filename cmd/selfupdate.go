package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"movetest/internal/cli"
	"movetest/pkg/logging"
)

// githubRepoSlug is the GitHub repository (owner/repo) movetest releases
// check against.
const githubRepoSlug = "movetest/movetest"

// newSelfUpdateCmd creates the Cobra command that checks for and applies a
// newer released build of movetest from GitHub.
func newSelfUpdateCmd() *cobra.Command {
	var checkOnly bool

	c := &cobra.Command{
		Use:   "self-update",
		Short: "Update movetest to the latest version",
		Long: `Checks for the latest release of movetest on GitHub and
updates the current binary if a newer version is found. --check reports
availability without downloading or replacing the binary, so it can gate a
CI step without side effects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd, checkOnly)
		},
	}
	c.Flags().BoolVar(&checkOnly, "check", false, "report whether an update is available without applying it")
	return c
}

// runSelfUpdate checks the current version against the latest GitHub
// release and, unless checkOnly is set, replaces the running binary.
func runSelfUpdate(cmd *cobra.Command, checkOnly bool) error {
	out := cmd.OutOrStdout()
	currentVersion := rootCmd.Version

	// A development build has no release to compare against.
	if currentVersion == "" || currentVersion == "dev" {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "cannot self-update a development build"}
	}

	logging.Info("selfupdate", "checking %s for a release newer than %s", githubRepoSlug, currentVersion)

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "constructing updater", Cause: err}
	}

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "detecting latest release", Cause: err}
	}
	if !found {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "no release found"}
	}

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintf(out, "movetest %s is already the latest version.\n", currentVersion)
		return nil
	}

	fmt.Fprintf(out, "a newer version is available: %s (published %s)\n", latest.Version(), latest.PublishedAt)
	if latest.ReleaseNotes != "" {
		fmt.Fprintf(out, "release notes:\n%s\n", latest.ReleaseNotes)
	}

	if checkOnly {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "locating running executable", Cause: err}
	}

	logging.Info("selfupdate", "replacing %s with %s", exe, latest.Version())
	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		return cli.SelfUpdateError{Repo: githubRepoSlug, Message: "applying update", Cause: err}
	}

	fmt.Fprintf(out, "updated to version %s\n", latest.Version())
	return nil
}
