package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
	"github.com/Horopapera/Mind-Map-generator/internal/parser"
)

var rootCmd = &cobra.Command{
	Use:   "mindmap",
	Short: "Mindmap turns indented text into mind-map trees",
	Long: `Mindmap parses indentation-structured text (and Markdown, HTML, YAML,
CSV, DOCX or PDF files) into a hierarchical mind map, then renders or
exports it.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// loadForest parses the input file (or stdin when path is "-" or empty).
func loadForest(path string) (*outline.Forest, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", err
		}
		return outline.Parse(string(data)), "stdin", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	p, err := parser.ForFile(path)
	if err != nil {
		return nil, "", err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = true
	}

	forest, err := p.Parse(f, path)
	if err != nil {
		return nil, "", err
	}
	return forest, path, nil
}
