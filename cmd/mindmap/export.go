package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Horopapera/Mind-Map-generator/internal/export"
	"github.com/Horopapera/Mind-Map-generator/internal/layout"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a mind map to json, txt, opml, svg or html",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forest, source, err := loadForest(args[0])
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		format := export.Format(formatName)
		if export.ContentType(format) == "" {
			return fmt.Errorf("unsupported export format: %s", formatName)
		}
		title := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

		var body []byte
		switch format {
		case export.FormatJSON:
			body, err = export.JSON(forest)
		case export.FormatText:
			body = export.Text(forest)
		case export.FormatOPML:
			body, err = export.OPML(forest, title)
		case export.FormatHTML:
			body, err = export.HTML(forest, title)
		case export.FormatSVG:
			view, _ := cmd.Flags().GetString("view")
			switch layout.Kind(view) {
			case layout.KindRadial:
				body = export.SVG(layout.Radial(forest))
			case layout.KindForce:
				body = export.SVG(layout.Force(forest, layout.DefaultForceOptions()))
			default:
				body = export.SVG(layout.Tree(forest))
			}
		}
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" || outPath == "-" {
			os.Stdout.Write(body)
			return nil
		}
		if err := os.WriteFile(outPath, body, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", outPath, len(body))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json, txt, opml, svg, html")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().String("view", "tree", "Layout for svg export: tree, radial, force")
	rootCmd.AddCommand(exportCmd)
}
