package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/db"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/kvstore"
	"github.com/alexanderramin/lexiplay/internal/leveldata"
	"github.com/alexanderramin/lexiplay/internal/repository"
	"github.com/alexanderramin/lexiplay/internal/sentence"
)

type practiceService struct {
	sessions    repository.LevelSessionRepo
	performance repository.PerformanceRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

// NewPracticeService wires the level session state machine to storage. When
// uow is non-nil, finishing a level clears or resets the session and appends
// its performance record in one transaction against SQLite; otherwise the two
// writes go through sessions and performance separately.
func NewPracticeService(
	sessions repository.LevelSessionRepo,
	performance repository.PerformanceRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PracticeService {
	return &practiceService{
		sessions:    sessions,
		performance: performance,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func checkLevel(moduleID domain.ModuleID, level int) error {
	if !moduleID.Valid() || level < 1 || level > curriculum.LevelCount {
		return fmt.Errorf("%w: %s level %d", ErrInvalidLevel, moduleID, level)
	}
	return nil
}

// load returns the stored session, or a fresh unsaved one. A storage failure
// or a session pointing outside the level is recorded in fields and treated
// as no session.
func (s *practiceService) load(ctx context.Context, moduleID domain.ModuleID, level int, now time.Time, fields map[string]any) (*domain.StoredLevelSessionState, bool) {
	state, err := s.sessions.Load(ctx, moduleID, level)
	if err != nil {
		fields["load_error"] = err.Error()
		state = nil
	}
	if state != nil && (state.QuestionIndex < 0 || state.QuestionIndex >= curriculum.QuestionsPerLevel) {
		fields["load_error"] = fmt.Sprintf("question index %d out of range", state.QuestionIndex)
		state = nil
	}
	if state != nil {
		return state, true
	}
	return domain.NewLevelSession(moduleID, level, curriculum.DeterministicSeed(moduleID, level), now), false
}

func (s *practiceService) Start(ctx context.Context, moduleID domain.ModuleID, level int) (view *PracticeView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"module": moduleID, "level": level}
	defer func() { observe(ctx, s.observer, "practice-start", startedAt, fields, err) }()

	if err = checkLevel(moduleID, level); err != nil {
		return nil, err
	}
	state, persisted := s.load(ctx, moduleID, level, startedAt, fields)
	fields["resumed"] = persisted
	return &PracticeView{
		Session:   state,
		Level:     curriculum.GenerateModuleLevel(moduleID, level),
		Questions: curriculum.SessionQuestions(state),
		Persisted: persisted,
	}, nil
}

func (s *practiceService) CheckAnswer(ctx context.Context, req CheckAnswerRequest) (res *CheckAnswerResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"module": req.ModuleID, "level": req.Level}
	defer func() { observe(ctx, s.observer, "practice-check", startedAt, fields, err) }()

	if err = checkLevel(req.ModuleID, req.Level); err != nil {
		return nil, err
	}
	state, _ := s.load(ctx, req.ModuleID, req.Level, startedAt, fields)

	question, err := pickQuestion(state, req.QuestionNumber)
	if err != nil {
		return nil, err
	}
	fields["question"] = question.QuestionNumber

	result := domain.TeacherLevelQuestionResult{
		QuestionNumber: question.QuestionNumber,
		QuestionID:     question.QuestionID,
		IsCorrect:      req.IsCorrect,
		ErrorType:      req.ErrorType,
		Response:       req.Response,
		AnsweredAt:     startedAt,
	}
	if result.IsCorrect {
		result.ErrorType = nil
	}

	var validation *domain.ValidationResult
	if question.InteractionType == domain.InteractionSlotBuild {
		validation, err = gradeSlotBuild(req, question.QuestionNumber)
		if err != nil {
			return nil, err
		}
		result.IsCorrect = validation.IsCorrect
		result.Response = validation.NormalizedSentence
		result.ErrorType = nil
		if validation.ErrorType != nil {
			ct := validation.ErrorType.CurriculumType()
			result.ErrorType = &ct
		}
	}
	fields["correct"] = result.IsCorrect

	state.RecordResult(result, startedAt)
	if err = s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("saving answer: %w", err)
	}
	return &CheckAnswerResult{
		Question:   question,
		Result:     result,
		Validation: validation,
		Session:    state,
	}, nil
}

func pickQuestion(state *domain.StoredLevelSessionState, number int) (domain.CurriculumLevelQuestion, error) {
	questions := curriculum.SessionQuestions(state)
	if number == 0 {
		return questions[state.QuestionIndex], nil
	}
	for _, q := range questions {
		if q.QuestionNumber == number {
			return q, nil
		}
	}
	return domain.CurriculumLevelQuestion{}, fmt.Errorf("%w: no question %d", ErrInvalidLevel, number)
}

func gradeSlotBuild(req CheckAnswerRequest, questionNumber int) (*domain.ValidationResult, error) {
	var (
		task domain.LevelTask
		ok   bool
	)
	if req.TaskID != "" {
		task, ok = leveldata.ByID(req.TaskID)
	} else {
		task, ok = leveldata.TaskForQuestion(req.Level, questionNumber)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTask, req.TaskID)
	}

	sel, err := ResolveSelection(task, req.Selection)
	if err != nil {
		return nil, err
	}
	result := sentence.Validate(task, sel)
	return &result, nil
}

// ResolveSelection turns slot-to-word-ID pairs into a Selection, rejecting
// slots the task lacks and words the slot does not offer.
func ResolveSelection(task domain.LevelTask, ids map[domain.SlotType]string) (domain.Selection, error) {
	sel := make(domain.Selection, len(ids))
	for slot, id := range ids {
		if !task.HasSlot(slot) {
			return nil, fmt.Errorf("%w: task %s has no %s slot", ErrUnknownWord, task.ID, slot)
		}
		found := false
		for _, w := range task.OptionsFor(slot) {
			if w.ID == id {
				sel[slot] = w
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownWord, id, slot)
		}
	}
	return sel, nil
}

func (s *practiceService) Next(ctx context.Context, moduleID domain.ModuleID, level int) (out *NextOutcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"module": moduleID, "level": level}
	defer func() { observe(ctx, s.observer, "practice-next", startedAt, fields, err) }()

	if err = checkLevel(moduleID, level); err != nil {
		return nil, err
	}
	state, _ := s.load(ctx, moduleID, level, startedAt, fields)
	def := curriculum.GenerateModuleLevel(moduleID, level)
	criteria := domain.CriteriaFor(def.StandardizedLevelDefinition)

	var record *domain.TeacherLevelPerformanceRecord
	if state.IsLastQuestion(criteria.TotalQuestions) {
		record = domain.NewPerformanceRecord(state, criteria, criteria.Passed(state.CorrectCount()), startedAt)
	}
	baseSeed := curriculum.DeterministicSeed(moduleID, level)
	status := state.Advance(criteria, baseSeed, startedAt)
	fields["status"] = status

	out = &NextOutcome{Status: status, Session: state}
	switch status {
	case domain.OutcomeAdvanced:
		if err = s.sessions.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("saving session: %w", err)
		}
		out.Questions = curriculum.SessionQuestions(state)
	case domain.OutcomePassed:
		if err = s.finish(ctx, record, nil); err != nil {
			return nil, err
		}
		out.Record = record
		out.Session = nil
		out.NextModule, out.NextLevel, out.Complete = curriculum.NextLevel(moduleID, level)
	case domain.OutcomeRetry:
		if err = s.finish(ctx, record, state); err != nil {
			return nil, err
		}
		out.Record = record
		out.Questions = curriculum.SessionQuestions(state)
		fields["reattempt"] = state.ReattemptCount
	}
	return out, nil
}

// finish appends record and either clears the level session (retry == nil)
// or saves the reset retry state.
func (s *practiceService) finish(ctx context.Context, record *domain.TeacherLevelPerformanceRecord, retry *domain.StoredLevelSessionState) error {
	write := func(ctx context.Context, sessions repository.LevelSessionRepo, performance repository.PerformanceRepo) error {
		if retry == nil {
			if err := sessions.Clear(ctx, record.ModuleID, record.LevelNumber); err != nil {
				return fmt.Errorf("clearing passed session: %w", err)
			}
		} else if err := sessions.Save(ctx, retry); err != nil {
			return fmt.Errorf("saving retry session: %w", err)
		}
		if err := performance.Append(ctx, record); err != nil {
			return fmt.Errorf("recording performance: %w", err)
		}
		return nil
	}

	if s.uow == nil {
		return write(ctx, s.sessions, s.performance)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return write(ctx,
			repository.NewKVLevelSessionRepo(kvstore.NewSQLiteStore(tx)),
			repository.NewSQLitePerformanceRepo(tx),
		)
	})
}

func (s *practiceService) History(ctx context.Context, moduleID domain.ModuleID) []*domain.TeacherLevelPerformanceRecord {
	startedAt := time.Now().UTC()
	fields := map[string]any{"module": moduleID}

	records, err := s.performance.ListByModule(ctx, moduleID)
	fields["count"] = len(records)
	observe(ctx, s.observer, "practice-history", startedAt, fields, err)
	if err != nil || records == nil {
		return []*domain.TeacherLevelPerformanceRecord{}
	}
	return records
}
