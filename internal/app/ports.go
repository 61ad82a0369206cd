// Package app declares the use cases the CLI drives. Each one is satisfied
// by a service; tests and alternative front ends may substitute their own.
package app

import (
	"context"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/feedback"
	"github.com/alexanderramin/lexiplay/internal/service"
)

type StartLevelUseCase interface {
	Start(ctx context.Context, moduleID domain.ModuleID, level int) (*service.PracticeView, error)
}

type CheckAnswerUseCase interface {
	CheckAnswer(ctx context.Context, req service.CheckAnswerRequest) (*service.CheckAnswerResult, error)
}

type AdvanceLevelUseCase interface {
	Next(ctx context.Context, moduleID domain.ModuleID, level int) (*service.NextOutcome, error)
}

type ScoreSentenceUseCase interface {
	Feedback(ctx context.Context, req feedback.Request) feedback.Response
}

type AuditUseCase interface {
	Audit() curriculum.AuditReport
}

// AuditFunc adapts a plain function to AuditUseCase.
type AuditFunc func() curriculum.AuditReport

func (f AuditFunc) Audit() curriculum.AuditReport { return f() }

// PracticeRunner is everything the interactive practice view needs.
type PracticeRunner interface {
	StartLevelUseCase
	CheckAnswerUseCase
	AdvanceLevelUseCase
}
