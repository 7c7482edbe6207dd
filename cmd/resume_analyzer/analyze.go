package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	analyzeResumePath string
	analyzeRole       string
	analyzeJobPath    string
	analyzeJobURL     string
	analyzeAllRoles   bool
	analyzeUseBrowser bool
	analyzeReportPath string
	analyzeVerbose    bool
	analyzeConfigPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against job requirements",
	Long: `Analyze a resume file (PDF, DOCX, or plain text) against a catalog role,
a job description file, or a job posting URL, and print the match report.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume file (PDF, DOCX, or plain text)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Catalog role key to match against (see 'roles')")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().BoolVar(&analyzeAllRoles, "all-roles", false, "Compare against every catalog role")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser fallback for SPA job pages")
	analyzeCmd.Flags().StringVar(&analyzeReportPath, "report", "", "Path to write the text report to")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed debug information")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Role:       analyzeRole,
		Job:        analyzeJobPath,
		JobURL:     analyzeJobURL,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
		Report:     analyzeReportPath,
	}

	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if analyzeResumePath == "" {
		return fmt.Errorf("--resume is required")
	}

	jobInputs := 0
	for _, v := range []string{cfg.Role, cfg.Job, cfg.JobURL} {
		if v != "" {
			jobInputs++
		}
	}
	if !analyzeAllRoles && jobInputs != 1 {
		return fmt.Errorf("exactly one of --role, --job, or --job-url is required (or use --all-roles)")
	}
	if analyzeAllRoles && jobInputs != 0 {
		return fmt.Errorf("--all-roles cannot be combined with --role, --job, or --job-url")
	}

	resumeText, err := readResume(analyzeResumePath)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	a := analyzer.New(cat)
	printer := report.NewPrinter(cmd.OutOrStdout())

	if analyzeAllRoles {
		return runCompareAll(cmd, a, resumeText, cfg)
	}

	job, err := resolveJob(cmd.Context(), cat, cfg)
	if err != nil {
		return err
	}

	signal, err := analyzer.BuildSignal(resumeText)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintSignal(signal)
		printer.PrintJobRequirements(job)
	}

	result, err := a.Run(signal, job)
	if err != nil {
		return err
	}

	printer.PrintResult(result)

	summary := report.TextSummary(result, job, time.Now())
	fmt.Fprintln(cmd.OutOrStdout(), summary)

	if cfg.Report != "" {
		if err := os.WriteFile(cfg.Report, []byte(summary), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.Report)
	}

	return nil
}

// runCompareAll analyzes the resume against every catalog role.
func runCompareAll(cmd *cobra.Command, a *analyzer.Analyzer, resumeText string, cfg config.Config) error {
	comparisons, err := a.CompareRoles(cmd.Context(), resumeText)
	if err != nil {
		return err
	}

	summary := report.ComparisonSummary(comparisons, time.Now())
	fmt.Fprintln(cmd.OutOrStdout(), summary)

	if cfg.Report != "" {
		if err := os.WriteFile(cfg.Report, []byte(summary), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.Report)
	}

	return nil
}

// resolveJob builds the job requirements from whichever input is set.
func resolveJob(ctx context.Context, cat *catalog.Catalog, cfg config.Config) (*types.JobRequirements, error) {
	switch {
	case cfg.Role != "":
		return cat.Role(cfg.Role)

	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file: %w", err)
		}
		return cat.AnalyzeDescription(string(data))

	default:
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		opts.Timeout = cfg.FetchTimeoutDuration(opts.Timeout)
		description, err := fetch.JobDescription(ctx, cfg.JobURL, opts)
		if err != nil {
			return nil, err
		}
		return cat.AnalyzeDescription(description)
	}
}

// readResume loads the resume file and extracts its plain text.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return ingestion.ExtractText(data)
}
