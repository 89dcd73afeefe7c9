package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search Wikipedia articles",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Search.Articles(context.Background(), args[0], limit)
			if err != nil {
				fatal("search", err)
			}
			if flagFmt == "table" {
				headers := []string{"TITLE", "WORDS", "SUMMARY"}
				rows := make([][]string, 0, len(resp.Results))
				for _, r := range resp.Results {
					rows = append(rows, []string{r.Title, strconv.Itoa(r.WordCount), truncate(r.Summary, 60)})
				}
				formatTable(headers, rows)
				return
			}
			titles := make([]string, len(resp.Results))
			for i, r := range resp.Results {
				titles[i] = r.Title
			}
			output(resp, titles...)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (1-50)")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Suggest article titles for a prefix",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			titles, err := apiClient.Search.Suggestions(context.Background(), args[0], limit)
			if err != nil {
				fatal("suggest", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, len(titles))
				for i, t := range titles {
					rows[i] = []string{t}
				}
				formatTable([]string{"TITLE"}, rows)
				return
			}
			output(titles, titles...)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max suggestions (1-20)")
	return cmd
}

func newArticleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "article <title>",
		Short: "Show an article summary",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := apiClient.Search.Article(context.Background(), args[0])
			if err != nil {
				fatal("get article", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"TITLE", "LINKS", "URL"}, [][]string{{a.Title, strconv.Itoa(a.LinkCount), a.URL}})
				return
			}
			output(a, a.URL)
		},
	}
}
