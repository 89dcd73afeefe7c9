package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/wikigraph/client"
)

func newExplorationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "explorations",
		Aliases: []string{"exp"},
		Short:   "Manage saved explorations",
	}
	cmd.AddCommand(newExplorationListCmd())
	cmd.AddCommand(newExplorationGetCmd())
	cmd.AddCommand(newExplorationSaveCmd())
	cmd.AddCommand(newExplorationUpdateCmd())
	cmd.AddCommand(newExplorationDeleteCmd())
	return cmd
}

func newExplorationListCmd() *cobra.Command {
	var opts client.ListExplorationsOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved explorations, newest first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list, err := apiClient.Explorations.List(context.Background(), &opts)
			if err != nil {
				fatal("list explorations", err)
			}
			if flagFmt == "table" {
				printExplorationTable(list.Explorations)
				fmt.Printf("\npage %d, %d of %d\n", list.Page, len(list.Explorations), list.TotalCount)
				return
			}
			ids := make([]string, len(list.Explorations))
			for i, e := range list.Explorations {
				ids[i] = e.ID
			}
			output(list, ids...)
		},
	}
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Results per page (max 50)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Match name or description")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&opts.RootNode, "root", "", "Filter by root article")
	return cmd
}

func newExplorationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a saved exploration",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			e, err := apiClient.Explorations.Get(context.Background(), args[0])
			if err != nil {
				fatal("get exploration", err)
			}
			if flagFmt == "table" {
				printNodeTable(e.GraphData.Nodes)
				return
			}
			output(e, e.ID)
		},
	}
}

type saveFlags struct {
	name        string
	description string
	tags        []string
}

func (f *saveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Exploration name (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-form description")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable)")
	_ = cmd.MarkFlagRequired("name")
}

// request builds a save payload from a graph file. The root node comes from
// the graph itself.
func (f *saveFlags) request(graphPath string) client.SaveExplorationRequest {
	g, err := readGraph(graphPath)
	if err != nil {
		fatal("read graph", err)
	}
	return client.SaveExplorationRequest{
		Name:        f.name,
		Description: f.description,
		RootNode:    g.RootNode,
		GraphData:   *g,
		Tags:        f.tags,
	}
}

func newExplorationSaveCmd() *cobra.Command {
	var f saveFlags
	cmd := &cobra.Command{
		Use:   "save <graph-file|->",
		Short: "Save a graph as a named exploration",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			e, err := apiClient.Explorations.Create(context.Background(), f.request(args[0]))
			if err != nil {
				fatal("save exploration", err)
			}
			output(e, e.ID)
		},
	}
	f.register(cmd)
	return cmd
}

func newExplorationUpdateCmd() *cobra.Command {
	var f saveFlags
	cmd := &cobra.Command{
		Use:   "update <id> <graph-file|->",
		Short: "Replace a saved exploration",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			e, err := apiClient.Explorations.Update(context.Background(), args[0], f.request(args[1]))
			if err != nil {
				fatal("update exploration", err)
			}
			output(e, e.ID)
		},
	}
	f.register(cmd)
	return cmd
}

func newExplorationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved exploration",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Explorations.Delete(context.Background(), args[0]); err != nil {
				fatal("delete exploration", err)
			}
			output(map[string]any{"deleted": true, "exploration_id": args[0]}, args[0])
		},
	}
}

func printExplorationTable(list []client.Exploration) {
	headers := []string{"ID", "NAME", "ROOT", "NODES", "CREATED"}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{
			e.ID,
			truncate(e.Name, 40),
			e.RootNode,
			strconv.Itoa(e.GraphData.TotalNodes),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	formatTable(headers, rows)
}
