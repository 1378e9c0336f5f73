package cmd

import (
	"fmt"
	"os"

	"github.com/edugen/tka/internal/app"
	"github.com/edugen/tka/internal/auth"
	"github.com/edugen/tka/internal/config"
	"github.com/edugen/tka/internal/connectivity"
	"github.com/edugen/tka/internal/exam"
	"github.com/edugen/tka/internal/history"
	"github.com/edugen/tka/internal/llm"
	"github.com/edugen/tka/internal/questiongen"
	"github.com/edugen/tka/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Exam generation will be unavailable until an API key is set.")
		provider = llm.NewMockProvider()
	}

	genCfg := questiongen.DefaultConfig()
	generator := questiongen.New(provider, genCfg)

	authSvc := auth.NewService(st.UserRepo(), st.SessionRepo())
	histSvc := history.NewService(st.ResultRepo())
	examSvc := exam.NewService(generator, connectivity.NewDialChecker(), st.SnapshotRepo(), st.ResultRepo(), cfg.Exam)

	opts := app.Options{
		Config:  cfg,
		Auth:    authSvc,
		History: histSvc,
		Exam:    examSvc,
	}

	// Restore a previous session and any in-progress exam.
	if username, ok, err := authSvc.Current(ctx); err == nil && ok {
		opts.Username = username
		if resumed, err := examSvc.Resume(ctx, username); err == nil && resumed {
			opts.CanResume = true
		}
	}

	return app.Run(opts)
}
