package cli

import (
	"github.com/alexanderramin/lexiplay/internal/app"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and use cases CLI commands run against.
type App struct {
	Practice service.PracticeService
	Feedback service.FeedbackService

	// Optional use-case overrides. A nil field falls back to the service
	// that implements it.
	StartLevel    app.StartLevelUseCase
	CheckAnswer   app.CheckAnswerUseCase
	AdvanceLevel  app.AdvanceLevelUseCase
	ScoreSentence app.ScoreSentenceUseCase
	Audit         app.AuditUseCase

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lexiplay" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lexiplay",
		Short: "English sentence practice for young learners",
	}

	root.AddCommand(
		newAuditCmd(a),
		newCurriculumCmd(a),
		newSentenceCmd(a),
		newPracticeCmd(a),
		newFeedbackCmd(a),
	)

	return root
}
