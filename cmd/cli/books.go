package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quotebook/pkg/models"
)

type bookListResponse struct {
	Category   string        `json:"category"`
	Categories []string      `json:"categories"`
	Total      int           `json:"total"`
	Items      []models.Book `json:"items"`
}

type bookQuote struct {
	models.Quote
	Comment  string `json:"comment"`
	Favorite bool   `json:"favorite"`
}

type bookResponse struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Categories       []string    `json:"categories"`
	SelectedCategory *string     `json:"selected_category"`
	Total            int         `json:"total"`
	Quotes           []bookQuote `json:"quotes"`
}

func newBooksCmd(cli *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List and show bundled books",
	}

	var listCategory string
	list := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally for one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/books"
			if listCategory != "" {
				path += "?category=" + url.QueryEscape(listCategory)
			}
			var resp bookListResponse
			if err := cli.doJSON(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "categories: %s\n", strings.Join(resp.Categories, ", "))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTITLE\tCATEGORY\tQUOTES")
			for _, b := range resp.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", b.Path, b.Title, b.Category, b.QuoteCount)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&listCategory, "category", "", "category filter (all, books, dance, others)")

	var showCategory string
	var asJSON bool
	show := &cobra.Command{
		Use:   "show <book>",
		Short: "Show the quotes of one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/book/" + strings.Trim(args[0], "/")
			if showCategory != "" {
				path += "?category=" + url.QueryEscape(showCategory)
			}
			var resp bookResponse
			if err := cli.doJSON(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, resp)
			}

			fmt.Fprintf(out, "%s (%d of %d quotes)\n", resp.Title, len(resp.Quotes), resp.Total)
			if len(resp.Categories) > 0 {
				fmt.Fprintf(out, "categories: %s\n", strings.Join(resp.Categories, ", "))
			}
			for _, q := range resp.Quotes {
				star := " "
				if q.Favorite {
					star = "*"
				}
				fmt.Fprintf(out, "%s [%s] %s\n", star, q.ID, q.Text)
				if q.Comment != "" {
					fmt.Fprintf(out, "    comment: %s\n", q.Comment)
				}
			}
			return nil
		},
	}
	show.Flags().StringVar(&showCategory, "category", "", "only quotes in this category")
	show.Flags().BoolVar(&asJSON, "json", false, "print the raw response")

	cmd.AddCommand(list, show)
	return cmd
}
