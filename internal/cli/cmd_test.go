package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/lexiplay/internal/app"
	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/feedback"
	"github.com/alexanderramin/lexiplay/internal/kvstore"
	"github.com/alexanderramin/lexiplay/internal/repository"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/alexanderramin/lexiplay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	sessions := repository.NewKVLevelSessionRepo(kvstore.NewSQLiteStore(database))
	performance := repository.NewSQLitePerformanceRepo(database)

	return &App{
		Practice: service.NewPracticeService(sessions, performance, testutil.NewTestUoW(database)),
		// No remote client: feedback is always scored locally.
		Feedback: service.NewFeedbackService(nil),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- audit ---

func TestAuditCmd_ShippedCurriculumIsValid(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "audit", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "AUDIT")
	assert.Contains(t, out, "structurally valid")
}

func TestAuditCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "audit", "--json")
	require.NoError(t, err)

	var report curriculum.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	assert.Len(t, report.Checks, len(curriculum.CheckNames()))
}

func TestAuditCmd_StrictFailsOnIssues(t *testing.T) {
	a := testApp(t)
	a.Audit = app.AuditFunc(func() curriculum.AuditReport {
		return curriculum.AuditReport{
			Checks: map[string]bool{curriculum.CheckUniqueObjectives: false},
			Issues: []string{"unique_objectives: module picture_talk repeats objective"},
		}
	})

	out, err := executeCmd(t, a, "audit")
	require.NoError(t, err, "non-strict audit reports without failing")
	assert.Contains(t, out, "repeats objective")

	_, err = executeCmd(t, a, "audit", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 issue(s)")
}

// --- curriculum ---

func TestCurriculumModulesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "curriculum", "modules")
	require.NoError(t, err)
	for _, id := range domain.AllModules() {
		assert.Contains(t, out, string(id))
	}
}

func TestCurriculumShowCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "curriculum", "show", "--module", "grammar-detective", "--level", "19")
	require.NoError(t, err)
	assert.Contains(t, out, "GRAMMAR DETECTIVE · LEVEL 19")
	assert.Contains(t, out, "error detection")
}

func TestCurriculumShowCmd_SeededJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "curriculum", "show", "--module", "sentence_builder", "--level", "5", "--seed", "7", "--json")
	require.NoError(t, err)

	var def domain.ModuleLevelDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	want := curriculum.ShuffleQuestions(curriculum.GenerateModuleLevel(domain.ModuleSentenceBuilder, 5).Questions, 7)
	assert.Equal(t, want, def.Questions)
}

func TestCurriculumShowCmd_SeedIgnoredBeforeReshuffle(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "curriculum", "show", "--level", "2", "--seed", "99", "--json")
	require.NoError(t, err)

	var def domain.ModuleLevelDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	assert.Equal(t, curriculum.GenerateModuleLevel(domain.ModuleSentenceBuilder, 2).Questions, def.Questions)
}

func TestCurriculumShowCmd_RejectsBadInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "curriculum", "show", "--level", "21")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 20")

	_, err = executeCmd(t, testApp(t), "curriculum", "show", "--module", "spelling_bee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown module")
}

// --- sentence ---

func TestSentenceTasksCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "sentence", "tasks", "--level", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "sb-l1-animals")
	assert.NotContains(t, out, "sb-l2-")

	out, err = executeCmd(t, testApp(t), "sentence", "tasks", "--level", "13")
	require.NoError(t, err)
	assert.Contains(t, out, "sb-l5-describe-doer")
	assert.NotContains(t, out, "sb-l1-")

	out, err = executeCmd(t, testApp(t), "sentence", "tasks")
	require.NoError(t, err)
	assert.Contains(t, out, "sb-l2-")
}

func TestSentenceCheckCmd_Valid(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "sentence", "check", "--task", "sb-l1-animals",
		"--slot", "article=art_a", "--slot", "subject=n_cat", "--slot", "verb=v_runs")
	require.NoError(t, err)
	assert.Contains(t, out, "Great job!")
	assert.Contains(t, out, "A cat runs.")
}

func TestSentenceCheckCmd_CommaSeparatedSlotsAndJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "sentence", "check", "--task", "sb-l1-animals",
		"--slot", "article=art_a,subject=n_cat,verb=v_flies", "--json")
	require.NoError(t, err)

	var res domain.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.IsCorrect)
	require.NotNil(t, res.ErrorType)
	assert.Equal(t, domain.ErrLogicMismatch, *res.ErrorType)
}

func TestSentenceCheckCmd_Errors(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "sentence", "check", "--task", "nope", "--slot", "subject=n_cat")
	assert.ErrorIs(t, err, service.ErrUnknownTask)

	_, err = executeCmd(t, testApp(t), "sentence", "check", "--task", "sb-l1-animals", "--slot", "subject=n_pizza")
	assert.ErrorIs(t, err, service.ErrUnknownWord)

	_, err = executeCmd(t, testApp(t), "sentence", "check", "--task", "sb-l1-animals", "--slot", "noun=n_cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown slot")

	out, err := executeCmd(t, testApp(t), "sentence", "check", "--task", "sb-l1-animals")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no --slot given")
	assert.Contains(t, out, "(n_cat)", "options are listed when no terminal is attached")
}

// --- practice ---

func TestPracticeStatusCmd_FreshLevel(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "practice", "status", "--module", "picture_talk", "--level", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1 of 10")
	assert.Contains(t, out, "attempt 1")
	assert.Contains(t, out, "nothing saved yet")
}

func TestPracticeCmd_PlayLevelToPass(t *testing.T) {
	a := testApp(t)
	level := []string{"--module", "picture_talk", "--level", "1"}

	var out string
	for i := 0; i < 10; i++ {
		args := append([]string{"practice", "check", "--correct"}, level...)
		res, err := executeCmd(t, a, args...)
		require.NoError(t, err)
		assert.Contains(t, res, fmt.Sprintf("Question %d", i+1))

		out, err = executeCmd(t, a, append([]string{"practice", "next"}, level...)...)
		require.NoError(t, err)
	}
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "10/10 correct")
	assert.Contains(t, out, "picture talk level 2")

	hist, err := executeCmd(t, a, "practice", "history", "--module", "picture_talk")
	require.NoError(t, err)
	assert.Contains(t, hist, "10/10")
	assert.Contains(t, hist, "passed")

	status, err := executeCmd(t, a, append([]string{"practice", "status"}, level...)...)
	require.NoError(t, err)
	assert.Contains(t, status, "nothing saved yet", "a passed level starts over")
}

func TestPracticeCmd_FailedLevelRetries(t *testing.T) {
	a := testApp(t)
	level := []string{"--module", "vocabulary_builder", "--level", "3"}

	var out string
	for i := 0; i < 10; i++ {
		args := append([]string{"practice", "check", "--error-type", "spelling"}, level...)
		_, err := executeCmd(t, a, args...)
		require.NoError(t, err)
		out, err = executeCmd(t, a, append([]string{"practice", "next"}, level...)...)
		require.NoError(t, err)
	}
	assert.Contains(t, out, "RETRY")
	assert.Contains(t, out, "spelling×10")
	assert.Contains(t, out, "Attempt 2")

	status, err := executeCmd(t, a, append([]string{"practice", "status"}, level...)...)
	require.NoError(t, err)
	assert.Contains(t, status, "attempt 2")
}

func TestPracticeCheckCmd_SlotBuild(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "practice", "check",
		"--module", "sentence_builder", "--level", "5", "--question", "8",
		"--task", "sb-l1-animals", "--slot", "article=art_an", "--slot", "subject=n_cat", "--slot", "verb=v_runs")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 8")
	assert.Contains(t, out, "Check a or an")
}

func TestPracticeCheckCmd_RejectsUnknownErrorType(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "practice", "check", "--error-type", "bad_vibes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error type")
}

type failingChecker struct{}

func (failingChecker) CheckAnswer(context.Context, service.CheckAnswerRequest) (*service.CheckAnswerResult, error) {
	return nil, errors.New("checker offline")
}

func TestPracticeCheckCmd_UsesOverride(t *testing.T) {
	a := testApp(t)
	a.CheckAnswer = failingChecker{}

	_, err := executeCmd(t, a, "practice", "check", "--correct")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checker offline")
}

func TestPracticeRunCmd_NeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "practice", "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

// --- feedback ---

func TestFeedbackCmd_Local(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "feedback", "--sentence", "The big dog is brown.", "--topic", "pets", "--level", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "FEEDBACK")
	assert.Contains(t, out, "source: local")
}

func TestFeedbackCmd_CompareJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "feedback",
		"--sentence", "A cat is small.", "--sentence2", "An elephant is bigger than a cat.",
		"--function", "compare", "--topic", "animals", "--json")
	require.NoError(t, err)

	var resp feedback.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, feedback.SourceLocal, resp.Source)
	assert.NotEmpty(t, resp.Summary)
}

func TestFeedbackCmd_RejectsBadInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "feedback", "--sentence", "  ")
	require.Error(t, err)

	_, err = executeCmd(t, testApp(t), "feedback", "--sentence", "Hi.", "--function", "gossip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language function")

	_, err = executeCmd(t, testApp(t), "feedback", "--sentence", "Hi.", "--level", "0")
	require.Error(t, err)
}
