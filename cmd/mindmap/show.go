package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Render a file as a tree in the terminal",
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

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
		maxDepth, _ := cmd.Flags().GetInt("depth")
		if maxDepth >= 0 {
			collapseBelow(forest, maxDepth)
		}

		printForest(forest)
		return nil
	},
}

func init() {
	showCmd.Flags().Int("depth", -1, "Collapse everything deeper than this many levels (-1 = show all)")
	rootCmd.AddCommand(showCmd)
}

// collapseBelow collapses every parent at nesting depth >= max.
func collapseBelow(f *outline.Forest, max int) {
	var walk func(n *outline.Node, depth int)
	walk = func(n *outline.Node, depth int) {
		if len(n.Children) > 0 && depth >= max {
			f.ToggleExpand(n.ID)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range f.Roots {
		walk(r, 0)
	}
}

var (
	branchColor = color.New(color.Faint)
	nodeColor   = color.New(color.FgCyan, color.Bold)
	moreColor   = color.New(color.Faint, color.Italic)
)

func printForest(f *outline.Forest) {
	for _, r := range f.Roots {
		printNode(r, "")
	}
}

func printNode(n *outline.Node, prefix string) {
	if len(n.Children) > 0 {
		nodeColor.Println(n.Label)
	} else {
		fmt.Println(n.Label)
	}
	if !n.Expanded {
		if len(n.Children) > 0 {
			branchColor.Print(prefix + "└── ")
			moreColor.Printf("… %d hidden\n", len(n.Children))
		}
		return
	}
	for i, c := range n.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(n.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		branchColor.Print(prefix + connector)
		printNode(c, childPrefix)
	}
}
