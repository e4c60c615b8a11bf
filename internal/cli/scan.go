package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/config"
	"github.com/tmorelli/nitpick/internal/gitctx"
	"github.com/tmorelli/nitpick/internal/output"
	"github.com/tmorelli/nitpick/internal/review"
)

var (
	flagSource  string
	flagTarget  string
	flagPaths   string
	flagExclude string
	flagFormat  string
	flagOut     string
	flagFailOn  string
	flagRules   string
	flagJobs    int
	flagVerbose bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Analyze changed lines between two git refs",
	Long: "Scan locates files changed between the source and target refs, folds in staged\n" +
		"and unstaged work, and checks every changed line against the rule catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runScan(cfg)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagSource != "" {
		m["source"] = flagSource
	}
	if flagTarget != "" {
		m["target"] = flagTarget
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["failOn"] = flagFailOn
	}
	if flagRules != "" {
		m["rulesFile"] = flagRules
	}
	if flagJobs > 0 {
		m["workers"] = fmt.Sprintf("%d", flagJobs)
	}
	return m
}

func buildLocateOpts(cfg config.Config) gitctx.LocateOptions {
	opts := gitctx.LocateOptions{
		SourceRef: cfg.SourceRef,
		TargetRef: cfg.TargetRef,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
	}
	if flagPaths != "" {
		opts.Include = splitComma(flagPaths)
	}
	if flagExclude != "" {
		opts.Exclude = append(opts.Exclude, splitComma(flagExclude)...)
	}
	return opts
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func buildCatalog(cfg config.Config) (*catalog.Catalog, error) {
	var extra []catalog.Rule
	if cfg.RulesFile != "" {
		rules, err := catalog.LoadFile(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("loading rules file: %w", err)
		}
		extra = rules
	}
	return catalog.New(extra...)
}

func runScan(cfg config.Config) {
	cat, err := buildCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	repo, err := gitctx.Open(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	locator := &gitctx.Locator{Repo: repo, Differ: gitctx.GitDiffer{}}
	cs, err := locator.Locate(buildLocateOpts(cfg))
	if err != nil {
		var repoErr *gitctx.RepositoryError
		if errors.As(err, &repoErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := review.Options{Workers: cfg.Workers}
	if flagVerbose || cfg.Verbose {
		opts.Progress = func(done, total int, path string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, path)
		}
	}

	report, err := review.Run(ctx, cs, cat, repo.Reader(cfg.TargetRef), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if cfg.FailOn != "none" && cfg.FailOn != "" {
		if highest := report.HighestSeverity(); highest != "" && catalog.MeetsThreshold(highest, cfg.FailOn) {
			exitCode = ExitFindings
		}
	}
}

func init() {
	scanCmd.Flags().StringVar(&flagSource, "source", "", "Source ref to compare from (default: HEAD)")
	scanCmd.Flags().StringVar(&flagTarget, "target", "", "Target ref to compare to (default: HEAD)")
	scanCmd.Flags().StringVar(&flagPaths, "paths", "", "Include file path globs (comma-separated)")
	scanCmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file path globs (comma-separated)")
	scanCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (summary, detailed, json, markdown, sarif)")
	scanCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	scanCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Fail on severity threshold (none, info, low, medium, high, critical)")
	scanCmd.Flags().StringVar(&flagRules, "rules", "", "Custom rules file path (YAML)")
	scanCmd.Flags().IntVar(&flagJobs, "jobs", 0, "Number of analysis workers (default: GOMAXPROCS)")
	scanCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Report per-file progress on stderr")
}
