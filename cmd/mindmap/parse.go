package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Horopapera/Mind-Map-generator/internal/export"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file into a mind-map tree and print it as JSON",
	Long:  `Reads the file (or stdin when omitted) and prints the parsed forest as nested JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		forest, _, err := loadForest(path)
		if err != nil {
			return err
		}

		out, err := export.JSON(forest)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
