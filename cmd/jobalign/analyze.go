package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobalign/internal/config"
	"github.com/jonathan/jobalign/internal/extraction"
	"github.com/jonathan/jobalign/internal/ingestion"
	"github.com/jonathan/jobalign/internal/matching"
	"github.com/jonathan/jobalign/internal/observability"
	"github.com/jonathan/jobalign/internal/rendering"
	"github.com/jonathan/jobalign/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Match a résumé against one or more job descriptions",
	Long:  "Extract the résumé and JD texts, make one matching-service call, validate the returned report, and write report.json plus a tailored resume.docx to a fresh run directory.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeResumeText string
	analyzeJDFiles    []string
	analyzeJDTexts    []string
	analyzeJDURLs     []string
	analyzeMode       string
	analyzeAPIKey     string
	analyzeBaseURL    string
	analyzeModel      string
	analyzeOutDir     string
	analyzeConfigFile string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to résumé file (pdf, docx, txt, or image)")
	analyzeCmd.Flags().StringVar(&analyzeResumeText, "resume-text", "", "Résumé text pasted directly (alternative to --resume)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeJDFiles, "jd", "j", nil, "Path to a JD file (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeJDTexts, "jd-text", nil, "JD text pasted directly (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeJDURLs, "jd-url", nil, "URL of a JD posting page (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeMode, "mode", "m", "", "Matching mode: deepseek, custom, gemini, or demo")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Service API key (overrides JOBALIGN_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeBaseURL, "base-url", "", "Endpoint base URL for custom mode")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Model identifier")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Directory for run artifacts")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress and the report summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	verbose := analyzeVerbose || cfg.Verbose

	resume, err := loadResume()
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("[VERBOSE] Résumé text: %d characters", len([]rune(resume)))
	}

	jds, err := assembleJDs(context.Background())
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("[VERBOSE] Submitting %d job descriptions in %s mode", len(jds), cfg.Mode)
	}

	ctx := context.Background()
	client, err := matching.NewClient(ctx, matching.ClientConfig{
		Mode:    matching.Mode(cfg.Mode),
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create matching client: %w", err)
	}
	defer client.Close()

	state, err := matching.Analyze(ctx, client, types.AnalysisState{}, resume, jds)
	if err != nil {
		return err
	}

	runDir, err := writeRunArtifacts(cfg.OutDir, state.Report)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintReport(state.Report)
	}
	fmt.Fprintf(os.Stdout, "Total score: %d/100\n", state.Report.TotalScore)
	if overview := state.Report.SelectedOverview(); overview != nil {
		fmt.Fprintf(os.Stdout, "Best match: JD_%d %s (%d/100)\n", overview.JDIndex, overview.JDTitle, overview.MatchScore)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", runDir)

	return nil
}

// resolveConfig layers flags over the config file over environment variables
// over built-in defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		Mode:    analyzeMode,
		APIKey:  analyzeAPIKey,
		BaseURL: analyzeBaseURL,
		Model:   analyzeModel,
		OutDir:  analyzeOutDir,
		Verbose: analyzeVerbose,
	}

	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Mode:    os.Getenv("JOBALIGN_MODE"),
		APIKey:  os.Getenv("JOBALIGN_API_KEY"),
		BaseURL: os.Getenv("JOBALIGN_BASE_URL"),
		Model:   os.Getenv("JOBALIGN_MODEL"),
	})
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadResume() (string, error) {
	switch {
	case analyzeResumeFile != "" && analyzeResumeText != "":
		return "", fmt.Errorf("cannot use --resume with --resume-text")
	case analyzeResumeText != "":
		return ingestion.CleanText(analyzeResumeText), nil
	case analyzeResumeFile != "":
		data, err := os.ReadFile(analyzeResumeFile)
		if err != nil {
			return "", fmt.Errorf("failed to read résumé file: %w", err)
		}
		return extraction.Extract(extraction.NewSourceDocument(analyzeResumeFile, data))
	default:
		return "", fmt.Errorf("must provide --resume or --resume-text")
	}
}

// assembleJDs ingests JD sources in flag order: files, pasted texts, URLs.
// Per-source failures go to stderr and the remaining sources continue; having
// no surviving entry at all is an error.
func assembleJDs(ctx context.Context) ([]types.JDEntry, error) {
	builder := ingestion.NewBuilder()
	for _, path := range analyzeJDFiles {
		builder.AddFilePath(path)
	}
	for i, text := range analyzeJDTexts {
		builder.AddText(fmt.Sprintf("岗位%d", i+1), ingestion.CleanText(text))
	}
	for _, urlStr := range analyzeJDURLs {
		builder.AddURL(ctx, urlStr)
	}

	result := builder.Result()
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "Warning: skipping JD source %s: %v\n", failure.Source, failure.Err)
	}
	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("no usable job description (provide --jd, --jd-text, or --jd-url)")
	}
	return result.Entries, nil
}

// writeRunArtifacts creates a fresh run directory and writes report.json and
// resume.docx into it.
func writeRunArtifacts(outDir string, report *types.MatchReport) (string, error) {
	runDir := filepath.Join(outDir, uuid.New().String())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "report.json"), reportJSON, 0644); err != nil {
		return "", fmt.Errorf("failed to write report.json: %w", err)
	}

	docxBytes, err := rendering.CompileToDocx(report.DraftResume)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, "resume.docx"), docxBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write resume.docx: %w", err)
	}

	return runDir, nil
}
