package cli

import (
	"github.com/alexanderramin/lexiplay/internal/app"
	"github.com/alexanderramin/lexiplay/internal/curriculum"
)

func (a *App) startLevelUseCase() app.StartLevelUseCase {
	if a.StartLevel != nil {
		return a.StartLevel
	}
	return a.Practice
}

func (a *App) checkAnswerUseCase() app.CheckAnswerUseCase {
	if a.CheckAnswer != nil {
		return a.CheckAnswer
	}
	return a.Practice
}

func (a *App) advanceLevelUseCase() app.AdvanceLevelUseCase {
	if a.AdvanceLevel != nil {
		return a.AdvanceLevel
	}
	return a.Practice
}

func (a *App) scoreSentenceUseCase() app.ScoreSentenceUseCase {
	if a.ScoreSentence != nil {
		return a.ScoreSentence
	}
	return a.Feedback
}

func (a *App) auditUseCase() app.AuditUseCase {
	if a.Audit != nil {
		return a.Audit
	}
	return app.AuditFunc(curriculum.AuditCurriculum)
}

// practiceRunner bundles the practice use cases for the interactive view.
func (a *App) practiceRunner() app.PracticeRunner {
	return struct {
		app.StartLevelUseCase
		app.CheckAnswerUseCase
		app.AdvanceLevelUseCase
	}{a.startLevelUseCase(), a.checkAnswerUseCase(), a.advanceLevelUseCase()}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
