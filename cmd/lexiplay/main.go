package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/lexiplay/internal/cli"
	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/db"
	"github.com/alexanderramin/lexiplay/internal/feedback"
	"github.com/alexanderramin/lexiplay/internal/kvstore"
	"github.com/alexanderramin/lexiplay/internal/repository"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// The curriculum is static; drift is reported, not fatal.
	if report := curriculum.AuditCurriculum(); !report.Valid {
		for _, issue := range report.Issues {
			logger.Warn("curriculum_audit", "issue", issue)
		}
	}

	// Determine DB path: env var or default ~/.lexiplay/lexiplay.db
	dbPath := os.Getenv("LEXIPLAY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lexiplay", "lexiplay.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if os.Getenv("LEXIPLAY_LOG_USE_CASES") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire repositories
	sessions := repository.NewKVLevelSessionRepo(kvstore.NewSQLiteStore(database))
	performance := repository.NewSQLitePerformanceRepo(database)

	// Level completion clears the session and records performance together.
	uow := db.NewSQLiteUnitOfWork(database)

	// Remote feedback only when configured; local rules otherwise.
	var client feedback.Client
	fbCfg := feedback.LoadConfig()
	if fbCfg.Enabled && fbCfg.Endpoint != "" {
		var observer feedback.Observer = feedback.NoopObserver{}
		if fbCfg.LogCalls {
			observer = feedback.NewLogObserver(os.Stderr)
		}
		client = feedback.NewHTTPClient(fbCfg, observer)
	}

	app := &cli.App{
		Practice: service.NewPracticeService(sessions, performance, uow, observers...),
		Feedback: service.NewFeedbackService(client, observers...),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
