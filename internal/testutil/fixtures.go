package testutil

import (
	"time"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/google/uuid"
)

// Level session options
type LevelSessionOption func(*domain.StoredLevelSessionState)

func WithQuestionIndex(i int) LevelSessionOption {
	return func(s *domain.StoredLevelSessionState) {
		s.QuestionIndex = i
	}
}

func WithSeed(seed uint32) LevelSessionOption {
	return func(s *domain.StoredLevelSessionState) {
		s.Seed = seed
	}
}

func WithReattemptCount(n int) LevelSessionOption {
	return func(s *domain.StoredLevelSessionState) {
		s.ReattemptCount = n
	}
}

// WithResult records a result for questionNumber.
func WithResult(questionNumber int, correct bool) LevelSessionOption {
	return func(s *domain.StoredLevelSessionState) {
		s.RecordResult(domain.TeacherLevelQuestionResult{
			QuestionNumber: questionNumber,
			IsCorrect:      correct,
			AnsweredAt:     s.UpdatedAt,
		}, s.UpdatedAt)
	}
}

// WithCorrectAnswers records results for questions 1..total with the first
// correct of them marked correct.
func WithCorrectAnswers(correct, total int) LevelSessionOption {
	return func(s *domain.StoredLevelSessionState) {
		for n := 1; n <= total; n++ {
			WithResult(n, n <= correct)(s)
		}
	}
}

func NewTestLevelSession(moduleID domain.ModuleID, level int, opts ...LevelSessionOption) *domain.StoredLevelSessionState {
	s := domain.NewLevelSession(moduleID, level, 4242, time.Now().UTC().Truncate(time.Second))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Performance record options
type PerformanceOption func(*domain.TeacherLevelPerformanceRecord)

// WithCorrect sets the correct count and recomputes accuracy and pass state
// against the 8-of-10 gate.
func WithCorrect(n int) PerformanceOption {
	return func(r *domain.TeacherLevelPerformanceRecord) {
		r.CorrectCount = n
		r.Accuracy = float64(n) / float64(r.TotalQuestions)
		r.Passed = n >= 8
	}
}

func WithErrorCount(t domain.CurriculumErrorType, n int) PerformanceOption {
	return func(r *domain.TeacherLevelPerformanceRecord) {
		r.ErrorCounts[t] = n
	}
}

func WithReattempts(n int) PerformanceOption {
	return func(r *domain.TeacherLevelPerformanceRecord) {
		r.ReattemptCount = n
	}
}

func WithCompletedAt(t time.Time) PerformanceOption {
	return func(r *domain.TeacherLevelPerformanceRecord) {
		r.CompletedAt = t
	}
}

// NewTestPerformanceRecord returns a passing 9-of-10 record unless options
// say otherwise.
func NewTestPerformanceRecord(moduleID domain.ModuleID, level int, opts ...PerformanceOption) *domain.TeacherLevelPerformanceRecord {
	r := &domain.TeacherLevelPerformanceRecord{
		ID:             uuid.New().String(),
		ModuleID:       moduleID,
		LevelNumber:    level,
		CorrectCount:   9,
		TotalQuestions: 10,
		Accuracy:       0.9,
		Passed:         true,
		ErrorCounts:    make(map[domain.CurriculumErrorType]int),
		CompletedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
