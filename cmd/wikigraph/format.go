package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/persistorai/wikigraph/client"
)

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.Join(parts, "  "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

func formatQuiet(lines ...string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}

// output prints v as JSON unless the quiet format is selected. Table
// rendering is handled by callers that know their row shape.
func output(v any, quietVals ...string) {
	switch flagFmt {
	case "quiet":
		formatQuiet(quietVals...)
	default:
		formatJSON(v)
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func printNodeTable(nodes []client.GraphNode) {
	headers := []string{"ID", "DEPTH", "CENTRALITY", "SUMMARY"}
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		centrality := "-"
		if n.Centrality != nil {
			centrality = strconv.FormatFloat(*n.Centrality, 'f', 3, 64)
		}
		rows = append(rows, []string{n.ID, strconv.Itoa(n.Depth), centrality, truncate(n.Summary, 60)})
	}
	formatTable(headers, rows)
}

func nodeIDs(nodes []client.GraphNode) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
