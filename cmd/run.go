package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/app"
	"github.com/dakia/mathquiz/internal/config"
	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/llm"
	"github.com/dakia/mathquiz/internal/logging"
	"github.com/dakia/mathquiz/internal/questiongen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/session"
	"github.com/dakia/mathquiz/internal/store"
	"github.com/dakia/mathquiz/internal/uploads"
)

// runApp builds dependencies and launches the TUI. History, AI and upload
// archiving are optional; failures there degrade the app instead of
// stopping it.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	deps := screens.Deps{
		Session: session.NewController(),
		Logger:  logger,
		L:       i18n.New(cfg.Locale),
	}

	var eventRepo store.EventRepo
	if cfg.HistoryEnabled() {
		if st, err := openHistory(cfg); err != nil {
			logger.Warn("history disabled", zap.Error(err))
			fmt.Fprintln(os.Stderr, "History unavailable:", err)
		} else {
			defer st.Close()
			eventRepo = st.EventRepo()
			deps.Results = st.ResultRepo()
		}
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, eventRepo, logger)
	if err != nil {
		logger.Warn("LLM provider not configured", zap.Error(err))
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		deps.Generator = questiongen.New(provider, questiongen.DefaultConfig(), logger)
	}

	archive, err := uploads.New(ctx, cfg.Uploads)
	if err != nil {
		logger.Warn("upload archive disabled", zap.Error(err))
	} else {
		deps.Archive = archive
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("locale", deps.L.Locale()),
		zap.Bool("ai", deps.AIAvailable()),
		zap.Bool("history", deps.Results != nil),
		zap.String("uploads", cfg.Uploads.Backend),
	)
	return app.Run(deps)
}

func openHistory(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
