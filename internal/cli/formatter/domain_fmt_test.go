package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/feedback"
	"github.com/alexanderramin/lexiplay/internal/leveldata"
	"github.com/alexanderramin/lexiplay/internal/sentence"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/alexanderramin/lexiplay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatModuleTree(t *testing.T) {
	got := stripANSI(FormatModuleTree(curriculum.GenerateCurriculum()))
	for _, id := range domain.AllModules() {
		assert.Contains(t, got, string(id))
		assert.Contains(t, got, curriculum.ModuleTitle(id))
	}
	assert.Contains(t, got, "L1-4 emergent")
	assert.Contains(t, got, "L17-20 fluent")
	assert.Contains(t, got, "20 levels")
}

func TestFormatLevel(t *testing.T) {
	def := curriculum.GenerateModuleLevel(domain.ModuleSentenceBuilder, 1)
	got := stripANSI(FormatLevel(def, def.Questions))
	assert.Contains(t, got, def.LevelObjective)
	assert.Contains(t, got, "8 of 10 and 75% accuracy")
	assert.Contains(t, got, "fixed")
	assert.Contains(t, got, "icon match")
	assert.Contains(t, got, "SENTENCE BUILDER · LEVEL 1")

	later := curriculum.GenerateModuleLevel(domain.ModuleFluencySprint, 12)
	got = stripANSI(FormatLevel(later, later.Questions))
	assert.Contains(t, got, "reshuffled each attempt")
	assert.Contains(t, got, "Time target")
	assert.Contains(t, got, "80% accuracy")
}

func TestFormatTaskListAndOptions(t *testing.T) {
	tasks := leveldata.ForLevel(1)
	require.NotEmpty(t, tasks)

	got := stripANSI(FormatTaskList(tasks))
	assert.Contains(t, got, tasks[0].ID)
	assert.Contains(t, got, tasks[0].Prompt)

	assert.Contains(t, stripANSI(FormatTaskList(nil)), "No sentence tasks")

	task, ok := leveldata.ByID("sb-l1-animals")
	require.True(t, ok)
	opts := stripANSI(FormatTaskOptions(task))
	assert.Contains(t, opts, "(n_cat)")
	assert.Contains(t, opts, "(art_an)")
}

func TestFormatValidation(t *testing.T) {
	task, ok := leveldata.ByID("sb-l1-animals")
	require.True(t, ok)

	good, _ := task.WordByID("art_a")
	cat, _ := task.WordByID("n_cat")
	runs, _ := task.WordByID("v_runs")
	res := sentence.Validate(task, domain.Selection{
		domain.SlotArticle: good,
		domain.SlotSubject: cat,
		domain.SlotVerb:    runs,
	})
	require.True(t, res.IsCorrect)
	got := stripANSI(FormatValidation(res))
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, res.NormalizedSentence)

	missing := sentence.Validate(task, domain.Selection{domain.SlotSubject: cat})
	got = stripANSI(FormatValidation(missing))
	assert.Contains(t, got, "✘")
	assert.Contains(t, got, "missing component")
}

func TestFormatAudit(t *testing.T) {
	got := stripANSI(FormatAudit(curriculum.AuditCurriculum()))
	assert.Contains(t, got, "structurally valid")
	assert.Contains(t, got, "module count")

	bad := curriculum.AuditReport{
		Checks: map[string]bool{curriculum.CheckModuleCount: false},
		Issues: []string{"module_count: expected 8 modules, got 7"},
	}
	got = stripANSI(FormatAudit(bad))
	assert.Contains(t, got, "1 issue(s) found")
	assert.Contains(t, got, "expected 8 modules")
	assert.Contains(t, got, "failed")
}

func TestFormatFeedback(t *testing.T) {
	got := stripANSI(FormatFeedback(feedback.Response{
		Score:             85,
		Summary:           "Nice sentence about pets.",
		Strengths:         []string{"Starts with a capital letter."},
		Suggestions:       []string{"Add a describing word."},
		CorrectedSentence: "The small dog runs.",
		Encouragement:     "Keep going!",
		Source:            feedback.SourceLocal,
	}))
	assert.Contains(t, got, "85%")
	assert.Contains(t, got, "+ Starts with a capital letter.")
	assert.Contains(t, got, "→ Add a describing word.")
	assert.Contains(t, got, "The small dog runs.")
	assert.Contains(t, got, "source: local")
}

func TestFormatPracticeView(t *testing.T) {
	s := testutil.NewTestLevelSession(domain.ModuleSentenceBuilder, 1,
		testutil.WithResult(1, true),
		testutil.WithQuestionIndex(1),
		testutil.WithReattemptCount(2),
	)
	def := curriculum.GenerateModuleLevel(domain.ModuleSentenceBuilder, 1)
	view := &service.PracticeView{Session: s, Level: def, Questions: def.Questions}

	got := stripANSI(FormatPracticeView(view))
	assert.Contains(t, got, "attempt 3")
	assert.Contains(t, got, "Question 2 of 10")
	assert.Contains(t, got, def.Questions[1].Prompt)
	assert.Contains(t, got, "1 correct so far, 8 needed")
	assert.Contains(t, got, "nothing saved yet")
}

func TestFormatNextOutcome(t *testing.T) {
	rec := testutil.NewTestPerformanceRecord(domain.ModuleSentenceBuilder, 20,
		testutil.WithErrorCount(domain.CurrPunctuation, 1),
	)

	passed := stripANSI(FormatNextOutcome(&service.NextOutcome{
		Status:     domain.OutcomePassed,
		Record:     rec,
		NextModule: domain.ModuleVocabularyBuilder,
		NextLevel:  1,
	}))
	assert.Contains(t, passed, "PASSED")
	assert.Contains(t, passed, "9/10 correct")
	assert.Contains(t, passed, "punctuation×1")
	assert.Contains(t, passed, "vocabulary builder level 1")

	done := stripANSI(FormatNextOutcome(&service.NextOutcome{Status: domain.OutcomePassed, Record: rec, Complete: true}))
	assert.Contains(t, done, "Curriculum complete")

	retry := stripANSI(FormatNextOutcome(&service.NextOutcome{
		Status:  domain.OutcomeRetry,
		Record:  rec,
		Session: testutil.NewTestLevelSession(domain.ModuleSentenceBuilder, 20, testutil.WithReattemptCount(1)),
	}))
	assert.Contains(t, retry, "RETRY")
	assert.Contains(t, retry, "Attempt 2")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, stripANSI(FormatHistory(nil)), "No graded attempts")

	recs := []*domain.TeacherLevelPerformanceRecord{
		testutil.NewTestPerformanceRecord(domain.ModuleSentenceBuilder, 1, testutil.WithCompletedAt(time.Now().Add(-2*time.Hour))),
		testutil.NewTestPerformanceRecord(domain.ModuleSentenceBuilder, 2, testutil.WithCorrect(5)),
	}
	got := stripANSI(FormatHistory(recs))
	assert.Contains(t, got, "9/10")
	assert.Contains(t, got, "5/10")
	assert.Contains(t, got, "passed")
	assert.Contains(t, got, "retry")
	assert.Contains(t, got, "2h ago")
}
