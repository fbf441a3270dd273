package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobalign/internal/extraction"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract plain text from a résumé or JD document",
	Long:  "Extract normalized plain text from a pdf, docx, txt, or image document and print it to stdout or write it to a file.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to the document (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output text file (default: stdout)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := extraction.Extract(extraction.NewSourceDocument(extractInputFile, data))
	if err != nil {
		return err
	}

	if extractOutputFile == "" {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(extractOutputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	return nil
}
