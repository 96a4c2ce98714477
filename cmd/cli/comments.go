package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

type commentResponse struct {
	QuoteID string `json:"quote_id"`
	Text    string `json:"text"`
}

func newCommentsCmd(cli *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and write per-quote comments",
	}

	get := &cobra.Command{
		Use:   "get <quote-id>",
		Short: "Print the saved comment for a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp commentResponse
			if err := cli.doJSON(cmd.Context(), http.MethodGet, "/comments/"+url.PathEscape(args[0]), nil, &resp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <quote-id> <text...>",
		Short: "Save a comment; an empty text removes it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"text": strings.Join(args[1:], " ")}
			var resp commentResponse
			if err := cli.doJSON(cmd.Context(), http.MethodPut, "/comments/"+url.PathEscape(args[0]), payload, &resp); err != nil {
				return err
			}
			if resp.Text == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "comment for %s cleared\n", resp.QuoteID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved comment for %s\n", resp.QuoteID)
			return nil
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
