package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quotebook/internal/catalog"
	"quotebook/internal/comments"
	"quotebook/internal/tui"
	"quotebook/pkg/database"
	"quotebook/pkg/utils"
)

func main() {
	cmd := &cobra.Command{
		Use:   "viewer [book]",
		Short: "Browse bundled quote books in the terminal",
		Long: `Opens the catalog, or jumps straight to a book when one is given
(e.g. "viewer courage-disliked" or "viewer dance/musicality-training").`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			book := ""
			if len(args) == 1 {
				book = args[0]
			}
			return run(cmd.Context(), book)
		},
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, book string) error {
	cfg := utils.Load()

	// The terminal belongs to the UI; logs only go to a file when configured.
	logger := zap.NewNop()
	if cfg.Logging.File != "" {
		l, closeLogger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer closeLogger()
		logger = l
	}

	db, err := database.OpenAndMigrate(database.DefaultConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store, closeStore, err := comments.Open(ctx, cfg.CommentStore, db, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("comment store: %w", err)
	}
	defer func() { _ = closeStore() }()

	m := tui.New(cat, comments.NewService(store, logger))
	if book != "" {
		m, _ = m.OpenBook(book)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
