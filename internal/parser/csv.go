package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// CSVParser handles CSV files. Each row is read as a path from root to leaf:
// cells left-to-right are ancestor labels. Consecutive rows sharing a prefix
// merge into the same branch, so
//
//	Projects,Home,Paint kitchen
//	Projects,Work,Ship release
//
// yields one "Projects" root with two subtrees.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*outline.Forest, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var records []outline.LineRecord
	var prev []string
	for _, row := range rows {
		path := rowPath(row)
		if len(path) == 0 {
			continue
		}
		// Emit only the cells past the common prefix with the previous row;
		// the stack builder reattaches them at the right depth.
		k := 0
		for k < len(prev) && k < len(path) && prev[k] == path[k] {
			k++
		}
		if k == len(path) {
			// Fully duplicated row (or a pure prefix of the previous one).
			prev = path
			continue
		}
		for i := k; i < len(path); i++ {
			records = append(records, outline.LineRecord{Content: path[i], Depth: i})
		}
		prev = path
	}

	return outline.Build(records), nil
}

// rowPath trims cells and cuts the row at its first empty cell.
func rowPath(row []string) []string {
	var path []string
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			break
		}
		path = append(path, cell)
	}
	return path
}
