package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"movetest/internal/backend"
	"movetest/internal/config"
	"movetest/internal/model"
	"movetest/internal/report"
	"movetest/internal/runner"
	"movetest/pkg/logging"
)

// errTestsFailed is returned from runRun when the run completed but one or
// more tests did not pass, distinguishing a clean infrastructure failure
// (config, bootstrap) from an expected non-zero exit (§7).
var errTestsFailed = errors.New("movetest: one or more tests failed")

type runOptions struct {
	configPath   string
	planPath     string
	filter       string
	gasLimit     uint64
	numThreads   int
	checkRefVM   bool
	verbose      bool
	stacktrace   bool
	reportFmt    string
	reportTmpl   string
	interactive  bool
	quiet        bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a compiled test plan",
		Long: `run executes every test named in a test plan manifest against the
configured backend(s), streaming PASS/FAIL/TIMEOUT status per test and
printing a final failure report and statistics summary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.planPath, "plan", "", "path to a YAML test plan manifest (required)")
	flags.StringVar(&opts.filter, "filter", "", "only run tests whose module::test_name contains this substring")
	flags.Uint64Var(&opts.gasLimit, "gas-limit", 0, "per-test gas budget (0 = use config/default)")
	flags.IntVar(&opts.numThreads, "num-threads", 0, "worker pool size (0 = number of CPUs)")
	flags.BoolVar(&opts.checkRefVM, "check-reference-vm", false, "cross-check every test against the reference VM")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug-level logging")
	flags.BoolVar(&opts.stacktrace, "report-stacktrace-on-abort", false, "include the VM stack trace in ABORTED failures")
	flags.StringVar(&opts.reportFmt, "report-format", "", "table (default), csv, or template")
	flags.StringVar(&opts.reportTmpl, "report-template", "", "Go template text, used only with --report-format template")
	flags.BoolVar(&opts.interactive, "interactive", false, "after the run, enter an interactive re-filter loop")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress the progress spinner")

	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions) error {
	fc, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := logging.LevelInfo
	if opts.verbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	cfg := fc.ToRunnerConfig()
	applyRunFlags(cmd, &cfg, opts)

	plan, err := config.LoadPlanManifest(opts.planPath)
	if err != nil {
		return err
	}
	if opts.filter != "" {
		plan = plan.Filter(opts.filter)
	}

	out := cmd.OutOrStdout()
	reporter := report.New(out, true)

	var s *spinner.Spinner
	if !opts.quiet && !opts.verbose {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Running tests..."
		s.Start()
	}

	ok, results, err := executePlan(cmd.Context(), cfg, plan, reporter)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	results.Summarize(out)
	report.ReportStatistics(out, results, cfg.ReportFormat, opts.reportTmpl)

	if opts.interactive {
		if err := runInteractiveFilter(cmd.Context(), cfg, plan, out); err != nil {
			return err
		}
	}

	if !ok {
		return errTestsFailed
	}
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *runner.Config, opts *runOptions) {
	flags := cmd.Flags()
	if flags.Changed("gas-limit") {
		cfg.GasLimit = opts.gasLimit
	}
	if flags.Changed("num-threads") {
		cfg.NumThreads = opts.numThreads
	}
	if flags.Changed("check-reference-vm") {
		cfg.CheckReferenceVM = opts.checkRefVM
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("report-stacktrace-on-abort") {
		cfg.ReportStacktraceOnAbort = opts.stacktrace
	}
	if flags.Changed("report-format") {
		cfg.ReportFormat = opts.reportFmt
	}
}

// executePlan assembles a Session over the currently-injected backend
// collaborators and runs plan to completion, returning whether every test
// passed. The real PrimaryVM/ReferenceVM/ModelBuilder are an embedding
// binary's responsibility to supply (§6); until one is linked in, these
// fall back to the unconfigured placeholders so the pipeline still runs
// end-to-end and reports BACKEND_UNCONFIGURED per test.
func executePlan(ctx context.Context, cfg runner.Config, plan model.TestPlan, writer *report.Reporter) (bool, report.TestResults, error) {
	session, err := runner.Assemble(cfg, backend.UnconfiguredVM{}, backend.UnconfiguredReferenceVM{}, backend.UnconfiguredModelBuilder{}, writer)
	if err != nil {
		return false, report.TestResults{}, fmt.Errorf("assembling run: %w", err)
	}

	if err := session.Bootstrapper.Publish(plan); err != nil {
		return false, report.TestResults{}, err
	}

	stats := session.Runner.Run(ctx, plan)
	results := report.TestResults{Stats: stats, Plan: plan}
	return stats.TotalFailed() == 0, results, nil
}

// runInteractiveFilter opens a readline prompt so the user can re-run the
// plan against a narrower filter without re-invoking the command, useful
// when chasing down one failing test out of a large plan (§6 interactive
// mode, grounded on the REPL's own readline loop).
func runInteractiveFilter(ctx context.Context, cfg runner.Config, plan model.TestPlan, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "movetest filter> ",
		HistoryFile:     os.TempDir() + "/.movetest_run_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, "entering interactive mode: type a substring to re-filter and re-run, or Ctrl-D to exit")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}

		if line == "" {
			continue
		}

		filtered := plan.Filter(line)
		reporter := report.New(out, true)
		ok, results, err := executePlan(ctx, cfg, filtered, reporter)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		results.Summarize(out)
		report.ReportStatistics(out, results, cfg.ReportFormat, "")
		_ = ok
	}
}
