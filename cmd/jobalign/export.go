package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobalign/internal/rendering"
	"github.com/jonathan/jobalign/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the résumé draft from a saved report as a Word document",
	Long:  "Read a previously written report.json and compile its draft_resume markdown into a .docx file. No other report field is exported.",
	RunE:  runExport,
}

var (
	exportReportFile string
	exportOutputFile string
)

func init() {
	exportCmd.Flags().StringVarP(&exportReportFile, "report", "r", "", "Path to report.json (required)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "resume.docx", "Path to output .docx file")
	_ = exportCmd.MarkFlagRequired("report")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportReportFile)
	if err != nil {
		return fmt.Errorf("failed to read report file: %w", err)
	}

	var report types.MatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to parse report JSON: %w", err)
	}
	if report.DraftResume == "" {
		return fmt.Errorf("report carries no draft_resume to export")
	}

	docxBytes, err := rendering.CompileToDocx(report.DraftResume)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutputFile, docxBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Output: %s\n", exportOutputFile)
	return nil
}
