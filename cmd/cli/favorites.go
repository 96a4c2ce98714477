package main

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"quotebook/pkg/models"
)

type favoriteListResponse struct {
	Total int               `json:"total"`
	Items []models.Favorite `json:"items"`
}

func newFavoritesCmd(cli *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite quotes",
	}

	var addBook string
	add := &cobra.Command{
		Use:   "add <quote-id>",
		Short: "Mark a quote as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fav models.Favorite
			payload := map[string]string{"book_id": addBook}
			if err := cli.doJSON(cmd.Context(), http.MethodPut, "/favorites/"+url.PathEscape(args[0]), payload, &fav); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to favorites\n", fav.QuoteID)
			return nil
		},
	}
	add.Flags().StringVar(&addBook, "book", "", "book id the quote belongs to")

	remove := &cobra.Command{
		Use:   "remove <quote-id>",
		Short: "Unmark a favorite quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.doJSON(cmd.Context(), http.MethodDelete, "/favorites/"+url.PathEscape(args[0]), nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s from favorites\n", args[0])
			return nil
		},
	}

	var listBook string
	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/favorites"
			if listBook != "" {
				path += "?book_id=" + url.QueryEscape(listBook)
			}
			var resp favoriteListResponse
			if err := cli.doJSON(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "QUOTE\tBOOK\tADDED")
			for _, f := range resp.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.QuoteID, f.BookID, f.CreatedAt.Format(time.DateOnly))
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&listBook, "book", "", "only favorites from this book")

	cmd.AddCommand(add, remove, list)
	return cmd
}
