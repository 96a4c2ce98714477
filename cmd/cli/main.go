package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotebook/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cli := &client{}

	root := &cobra.Command{
		Use:   "quotebook",
		Short: "Query books, comments and favorites from a quotebook API server",
		Long: `quotebook talks to a running api-server.

The server address comes from --api, then QUOTEBOOK_API_URL, then
http://localhost:8080.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cli.baseURL == "" {
				cli.baseURL = utils.Load().APIURL
			}
		},
	}
	root.PersistentFlags().StringVar(&cli.baseURL, "api", "", "API base URL")

	root.AddCommand(
		newBooksCmd(cli),
		newCommentsCmd(cli),
		newFavoritesCmd(cli),
	)
	return root
}
