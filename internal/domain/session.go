package domain

import "time"

// RetrySeedStep is added to the base seed once per reattempt.
const RetrySeedStep uint32 = 1009

// TeacherLevelQuestionResult is the recorded outcome of one checked question.
type TeacherLevelQuestionResult struct {
	QuestionNumber int                  `json:"questionNumber"`
	QuestionID     string               `json:"questionId"`
	IsCorrect      bool                 `json:"isCorrect"`
	ErrorType      *CurriculumErrorType `json:"errorType,omitempty"`
	Response       string               `json:"response,omitempty"`
	AnsweredAt     time.Time            `json:"answeredAt"`
}

// StoredLevelSessionState is the persisted progress of one level attempt.
// There is at most one per (ModuleID, LevelNumber).
type StoredLevelSessionState struct {
	ModuleID                ModuleID                           `json:"moduleId"`
	LevelNumber             int                                `json:"levelNumber"`
	QuestionIndex           int                                `json:"questionIndex"`
	ReattemptCount          int                                `json:"reattemptCount"`
	Seed                    uint32                             `json:"seed"`
	ResultsByQuestionNumber map[int]TeacherLevelQuestionResult `json:"resultsByQuestionNumber"`
	UpdatedAt               time.Time                          `json:"updatedAt"`
}

type LevelOutcome string

const (
	OutcomeAdvanced LevelOutcome = "advanced"
	OutcomePassed   LevelOutcome = "passed"
	OutcomeRetry    LevelOutcome = "retry"
)

// PassCriteria is the gate applied after the last question of a level.
type PassCriteria struct {
	TotalQuestions   int
	MinCorrect       int
	RequiredAccuracy float64
}

// CriteriaFor extracts the pass gate from a level definition.
func CriteriaFor(def StandardizedLevelDefinition) PassCriteria {
	return PassCriteria{
		TotalQuestions:   def.TotalQuestionsPerLevel,
		MinCorrect:       def.MinCorrectToPass,
		RequiredAccuracy: def.RequiredAccuracyToPass,
	}
}

func (c PassCriteria) Passed(correct int) bool {
	return EvaluatePass(correct, c.TotalQuestions, c.MinCorrect, c.RequiredAccuracy)
}

// EvaluatePass requires both the absolute minimum and the accuracy ratio.
func EvaluatePass(correct, total, minCorrect int, requiredAccuracy float64) bool {
	if total <= 0 {
		return false
	}
	accuracy := float64(correct) / float64(total)
	return correct >= minCorrect && accuracy >= requiredAccuracy
}

func NewLevelSession(moduleID ModuleID, level int, seed uint32, now time.Time) *StoredLevelSessionState {
	return &StoredLevelSessionState{
		ModuleID:                moduleID,
		LevelNumber:             level,
		Seed:                    seed,
		ResultsByQuestionNumber: make(map[int]TeacherLevelQuestionResult),
		UpdatedAt:               now,
	}
}

// RecordResult stores r under its question number, replacing any earlier
// result for the same question.
func (s *StoredLevelSessionState) RecordResult(r TeacherLevelQuestionResult, now time.Time) {
	if s.ResultsByQuestionNumber == nil {
		s.ResultsByQuestionNumber = make(map[int]TeacherLevelQuestionResult)
	}
	s.ResultsByQuestionNumber[r.QuestionNumber] = r
	s.UpdatedAt = now
}

// CorrectCount counts recorded correct answers. Unanswered questions count
// as incorrect.
func (s *StoredLevelSessionState) CorrectCount() int {
	n := 0
	for _, r := range s.ResultsByQuestionNumber {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

func (s *StoredLevelSessionState) IsLastQuestion(total int) bool {
	return s.QuestionIndex >= total-1
}

// Advance moves past the current question. Before the last question it only
// bumps QuestionIndex. At the last question it grades the attempt: a pass
// leaves the state untouched for the caller to clear, a fail resets it for a
// retry with a fresh seed derived from baseSeed.
func (s *StoredLevelSessionState) Advance(c PassCriteria, baseSeed uint32, now time.Time) LevelOutcome {
	if !s.IsLastQuestion(c.TotalQuestions) {
		s.QuestionIndex++
		s.UpdatedAt = now
		return OutcomeAdvanced
	}
	if c.Passed(s.CorrectCount()) {
		s.UpdatedAt = now
		return OutcomePassed
	}
	s.ResetForRetry(baseSeed, now)
	return OutcomeRetry
}

// ResetForRetry starts a new attempt on the same level.
func (s *StoredLevelSessionState) ResetForRetry(baseSeed uint32, now time.Time) {
	s.ReattemptCount++
	s.Seed = RetrySeed(baseSeed, s.ReattemptCount)
	s.QuestionIndex = 0
	s.ResultsByQuestionNumber = make(map[int]TeacherLevelQuestionResult)
	s.UpdatedAt = now
}

// RetrySeed derives the seed of the given reattempt. Arithmetic wraps at 2^32.
func RetrySeed(baseSeed uint32, reattempt int) uint32 {
	return baseSeed + uint32(reattempt)*RetrySeedStep
}

// TeacherLevelPerformanceRecord summarises one graded level attempt.
type TeacherLevelPerformanceRecord struct {
	ID             string                      `json:"id"`
	ModuleID       ModuleID                    `json:"moduleId"`
	LevelNumber    int                         `json:"levelNumber"`
	CorrectCount   int                         `json:"correctCount"`
	TotalQuestions int                         `json:"totalQuestions"`
	Accuracy       float64                     `json:"accuracy"`
	Passed         bool                        `json:"passed"`
	ReattemptCount int                         `json:"reattemptCount"`
	ErrorCounts    map[CurriculumErrorType]int `json:"errorCounts"`
	CompletedAt    time.Time                   `json:"completedAt"`
}

// NewPerformanceRecord summarises s as graded against c. It must be called
// before a failed attempt is reset.
func NewPerformanceRecord(s *StoredLevelSessionState, c PassCriteria, passed bool, now time.Time) *TeacherLevelPerformanceRecord {
	correct := s.CorrectCount()
	rec := &TeacherLevelPerformanceRecord{
		ModuleID:       s.ModuleID,
		LevelNumber:    s.LevelNumber,
		CorrectCount:   correct,
		TotalQuestions: c.TotalQuestions,
		Passed:         passed,
		ReattemptCount: s.ReattemptCount,
		ErrorCounts:    make(map[CurriculumErrorType]int),
		CompletedAt:    now,
	}
	if c.TotalQuestions > 0 {
		rec.Accuracy = float64(correct) / float64(c.TotalQuestions)
	}
	for _, r := range s.ResultsByQuestionNumber {
		if !r.IsCorrect && r.ErrorType != nil {
			rec.ErrorCounts[*r.ErrorType]++
		}
	}
	return rec
}
