package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"movetest/internal/backend"
	"movetest/internal/config"
	"movetest/internal/report"
	"movetest/internal/runner"
)

// registerTools registers the single run_move_unit_tests tool (§6,
// DOMAIN STACK: "exposes the single run/filter/summarize operation set as
// one MCP tool").
func (s *Server) registerTools() {
	runTool := mcp.NewTool("run_move_unit_tests",
		mcp.WithDescription("Run a compiled Move-style test plan and report pass/fail statistics"),
		mcp.WithString("plan_path",
			mcp.Required(),
			mcp.Description("Path to a YAML test plan manifest (see internal/config.PlanManifest)"),
		),
		mcp.WithString("filter",
			mcp.Description("Only run tests whose module::test_name contains this substring"),
		),
		mcp.WithNumber("gas_limit",
			mcp.Description("Per-test gas budget (default 1,000,000)"),
		),
		mcp.WithNumber("num_threads",
			mcp.Description("Worker pool size (default: number of CPUs)"),
		),
		mcp.WithBoolean("report_stacktrace_on_abort",
			mcp.Description("Include the VM stack trace in ABORTED failures"),
		),
		mcp.WithString("report_format",
			mcp.Description("table (default), csv, or template"),
		),
	)
	s.mcpServer.AddTool(runTool, s.handleRun)
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	planPath, ok := args["plan_path"].(string)
	if !ok || planPath == "" {
		return mcp.NewToolResultError("plan_path is required"), nil
	}

	plan, err := config.LoadPlanManifest(planPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading test plan: %v", err)), nil
	}

	if filter, ok := args["filter"].(string); ok && filter != "" {
		plan = plan.Filter(filter)
	}

	cfg := config.DefaultFileConfig().ToRunnerConfig()
	if gasLimit, ok := args["gas_limit"].(float64); ok {
		cfg.GasLimit = uint64(gasLimit)
	}
	if numThreads, ok := args["num_threads"].(float64); ok {
		cfg.NumThreads = int(numThreads)
	}
	if reportStacktrace, ok := args["report_stacktrace_on_abort"].(bool); ok {
		cfg.ReportStacktraceOnAbort = reportStacktrace
	}
	if reportFormat, ok := args["report_format"].(string); ok && reportFormat != "" {
		cfg.ReportFormat = reportFormat
	}

	var buf bytes.Buffer
	reporter := report.New(&buf, false)

	session, err := runner.Assemble(cfg, s.primaryVM, backend.UnconfiguredReferenceVM{}, backend.UnconfiguredModelBuilder{}, reporter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assembling run: %v", err)), nil
	}

	if err := session.Bootstrapper.Publish(plan); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("publishing modules: %v", err)), nil
	}

	stats := session.Runner.Run(ctx, plan)
	results := report.TestResults{Stats: stats, Plan: plan}
	ok = results.Summarize(&buf)
	report.ReportStatistics(&buf, results, cfg.ReportFormat, "")

	if !ok {
		return mcp.NewToolResultError(buf.String()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
