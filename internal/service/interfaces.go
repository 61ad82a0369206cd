package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/feedback"
)

var (
	// ErrInvalidLevel is returned for an unknown module or a level outside 1..20.
	ErrInvalidLevel = errors.New("invalid module level")

	// ErrUnknownTask is returned when a slot-build answer names no known task.
	ErrUnknownTask = errors.New("unknown sentence task")

	// ErrUnknownWord is returned when a selection names a word the task does not offer.
	ErrUnknownWord = errors.New("unknown word for slot")
)

// PracticeView is a level attempt as the learner sees it.
type PracticeView struct {
	Session *domain.StoredLevelSessionState
	Level   domain.ModuleLevelDefinition
	// Questions are in presentation order for the session's seed.
	Questions []domain.CurriculumLevelQuestion
	// Persisted is false for a fresh session that has not been saved yet.
	Persisted bool
}

// Current returns the question at the session's index.
func (v *PracticeView) Current() domain.CurriculumLevelQuestion {
	return v.Questions[v.Session.QuestionIndex]
}

// CheckAnswerRequest grades one question. Slot-build questions carry a task
// and a slot-to-word-ID selection; every other interaction carries the
// grading decision in IsCorrect.
type CheckAnswerRequest struct {
	ModuleID domain.ModuleID
	Level    int
	// QuestionNumber selects the question; zero means the current one.
	QuestionNumber int

	TaskID    string
	Selection map[domain.SlotType]string

	IsCorrect bool
	ErrorType *domain.CurriculumErrorType
	Response  string
}

type CheckAnswerResult struct {
	Question   domain.CurriculumLevelQuestion
	Result     domain.TeacherLevelQuestionResult
	Validation *domain.ValidationResult
	Session    *domain.StoredLevelSessionState
}

// NextOutcome reports a transition. Record is set when the level was graded.
// On a pass, NextModule and NextLevel name what follows unless Complete.
type NextOutcome struct {
	Status     domain.LevelOutcome
	Session    *domain.StoredLevelSessionState
	Record     *domain.TeacherLevelPerformanceRecord
	Questions  []domain.CurriculumLevelQuestion
	NextModule domain.ModuleID
	NextLevel  int
	Complete   bool
}

type PracticeService interface {
	Start(ctx context.Context, moduleID domain.ModuleID, level int) (*PracticeView, error)
	CheckAnswer(ctx context.Context, req CheckAnswerRequest) (*CheckAnswerResult, error)
	Next(ctx context.Context, moduleID domain.ModuleID, level int) (*NextOutcome, error)
	// History lists graded attempts oldest first; storage failures yield an
	// empty list.
	History(ctx context.Context, moduleID domain.ModuleID) []*domain.TeacherLevelPerformanceRecord
}

type FeedbackService interface {
	// Feedback never fails: remote errors fall back to local rules.
	Feedback(ctx context.Context, req feedback.Request) feedback.Response
}
