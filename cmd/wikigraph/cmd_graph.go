package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/wikigraph/client"
)

func newExploreCmd() *cobra.Command {
	var depth, maxNodes int
	cmd := &cobra.Command{
		Use:   "explore <title>",
		Short: "Build the link graph around an article",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.Explore(context.Background(), args[0], &client.ExploreOptions{Depth: depth, MaxNodes: maxNodes})
			if err != nil {
				fatal("explore", err)
			}
			if resp.GraphData == nil {
				fatal("explore", errors.New("server returned no graph"))
			}
			if flagFmt == "table" {
				printNodeTable(resp.GraphData.Nodes)
				fmt.Printf("\n%d nodes, %d edges, %.2fs\n", resp.GraphData.TotalNodes, resp.GraphData.TotalEdges, resp.ExplorationTime)
				return
			}
			output(resp, nodeIDs(resp.GraphData.Nodes)...)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "Hops from the root article (1-3)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Node budget (10-200)")
	return cmd
}

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <graph-file|-> <node-id>",
		Short: "Expand one node of a saved graph by a single hop",
		Long:  "Reads a graph (explore output or bare graph JSON) from a file or stdin and adds the links of node-id.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			g, err := readGraph(args[0])
			if err != nil {
				fatal("read graph", err)
			}
			expanded, err := apiClient.Graph.Expand(context.Background(), *g, args[1])
			if err != nil {
				fatal("expand", err)
			}
			if flagFmt == "table" {
				printNodeTable(expanded.Nodes)
				return
			}
			output(expanded, nodeIDs(expanded.Nodes)...)
		},
	}
}

// readGraph decodes either an explore response or bare graph data from path,
// where "-" means stdin.
func readGraph(path string) (*client.GraphData, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wrapped client.ExploreResponse
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.GraphData != nil {
		return wrapped.GraphData, nil
	}
	var g client.GraphData
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	if len(g.Nodes) == 0 {
		return nil, errors.New("graph has no nodes")
	}
	return &g, nil
}

func newPathCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest link chain between two articles",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.Path(context.Background(), args[0], args[1], maxDepth)
			if err != nil {
				fatal("path", err)
			}
			titles := make([]string, len(resp.Path))
			for i, s := range resp.Path {
				titles[i] = s.ArticleTitle
			}
			if flagFmt == "table" {
				if !resp.PathFound && resp.SearchTruncated {
					fmt.Printf("Search stopped at the fetch limit (%d articles explored)\n", resp.ArticlesExplored)
					return
				}
				if !resp.PathFound {
					fmt.Printf("No path found (%d articles explored)\n", resp.ArticlesExplored)
					return
				}
				rows := make([][]string, len(resp.Path))
				for i, s := range resp.Path {
					rows[i] = []string{strconv.Itoa(s.Step), s.ArticleTitle, s.URL}
				}
				formatTable([]string{"STEP", "ARTICLE", "URL"}, rows)
				return
			}
			output(resp, titles...)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum path length (0-10)")
	return cmd
}

func newMetricsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "metrics <title>",
		Short: "Summarize the graph around an article",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := apiClient.Graph.Metrics(context.Background(), args[0], depth)
			if err != nil {
				fatal("metrics", err)
			}
			if flagFmt == "table" {
				printMetrics(m)
				return
			}
			output(m, strconv.Itoa(m.TotalNodes))
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "Hops from the root article (1-3)")
	return cmd
}

func printMetrics(m *client.MetricsReport) {
	formatTable([]string{"METRIC", "VALUE"}, [][]string{
		{"nodes", strconv.Itoa(m.TotalNodes)},
		{"edges", strconv.Itoa(m.TotalEdges)},
		{"density", strconv.FormatFloat(m.Density, 'f', 4, 64)},
		{"average degree", strconv.FormatFloat(m.AverageDegree, 'f', 2, 64)},
		{"max degree", strconv.Itoa(m.MaxDegree)},
		{"max depth", strconv.Itoa(m.MaxDepth)},
	})

	depths := make([]int, 0, len(m.DepthDistribution))
	for d := range m.DepthDistribution {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	rows := make([][]string, len(depths))
	for i, d := range depths {
		rows[i] = []string{strconv.Itoa(d), strconv.Itoa(m.DepthDistribution[d])}
	}
	fmt.Println()
	formatTable([]string{"DEPTH", "NODES"}, rows)

	rows = make([][]string, len(m.NodesByCentrality))
	for i, n := range m.NodesByCentrality {
		rows[i] = []string{n.ID, strconv.FormatFloat(n.Centrality, 'f', 3, 64)}
	}
	fmt.Println()
	formatTable([]string{"ID", "CENTRALITY"}, rows)
}
