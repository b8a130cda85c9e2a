package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query> [file]",
	Short: "Find nodes whose label contains the query",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		forest, _, err := loadForest(path)
		if err != nil {
			return err
		}

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}

		matches := forest.Search(query)
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		crumb := color.New(color.Faint)
		for _, n := range matches {
			trail := n.Breadcrumb()
			if len(trail) > 1 {
				crumb.Print(strings.Join(trail[:len(trail)-1], " > ") + " > ")
			}
			fmt.Println(n.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
