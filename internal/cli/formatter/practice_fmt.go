package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/service"
	"github.com/samber/lo"
)

const accuracyBarWidth = 10

// FormatPracticeView renders where a learner stands in a level attempt.
func FormatPracticeView(v *service.PracticeView) string {
	var b strings.Builder
	s := v.Session
	total := len(v.Questions)

	fmt.Fprintf(&b, "%s  %s\n", StageBadge(v.Level.LiteracyStage), Dim(fmt.Sprintf("attempt %d", s.ReattemptCount+1)))
	b.WriteString(RenderQuestionTrack(v.Questions, s) + "\n\n")

	q := v.Current()
	fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("Question %d of %d", s.QuestionIndex+1, total)), Dim("("+Humanize(string(q.InteractionType))+")"))
	b.WriteString(Bold(q.Prompt) + "\n")
	if q.MaxResponseLength > 0 {
		b.WriteString(Dim(fmt.Sprintf("Answer in up to %d words.", q.MaxResponseLength)) + "\n")
	}

	fmt.Fprintf(&b, "\n%s %d correct so far, %d needed\n", Dim("Score"), s.CorrectCount(), v.Level.MinCorrectToPass)
	if !v.Persisted {
		b.WriteString(Dim("New attempt, nothing saved yet.") + "\n")
	}

	return RenderBox(fmt.Sprintf("%s · level %d", Humanize(string(s.ModuleID)), s.LevelNumber), b.String())
}

// FormatCheckResult renders the outcome of checking one answer.
func FormatCheckResult(res *service.CheckAnswerResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Question %d\n", Mark(res.Result.IsCorrect), res.Question.QuestionNumber)
	if res.Validation != nil {
		b.WriteString(FormatValidation(*res.Validation))
		return b.String()
	}
	if res.Result.ErrorType != nil {
		fmt.Fprintf(&b, "  %s\n", Dim("error: "+Humanize(string(*res.Result.ErrorType))))
	}
	return b.String()
}

// FormatNextOutcome renders a question transition or a graded level.
func FormatNextOutcome(out *service.NextOutcome) string {
	var b strings.Builder
	b.WriteString(OutcomePill(out.Status) + "\n")

	switch out.Status {
	case domain.OutcomeAdvanced:
		idx := out.Session.QuestionIndex
		if idx < len(out.Questions) {
			q := out.Questions[idx]
			fmt.Fprintf(&b, "%s\n%s\n", Dim(fmt.Sprintf("Question %d of %d", idx+1, len(out.Questions))), Bold(q.Prompt))
		}
	case domain.OutcomePassed:
		b.WriteString(FormatRecord(out.Record))
		if out.Complete {
			b.WriteString(StyleGreen.Render("Curriculum complete. Well done!") + "\n")
		} else {
			fmt.Fprintf(&b, "%s %s level %d\n", Dim("Up next:"), Humanize(string(out.NextModule)), out.NextLevel)
		}
	case domain.OutcomeRetry:
		b.WriteString(FormatRecord(out.Record))
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(fmt.Sprintf("Let's try again. Attempt %d starts with a new order.", out.Session.ReattemptCount+1)))
	}
	return b.String()
}

// FormatRecord renders one graded attempt in a line or two.
func FormatRecord(rec *domain.TeacherLevelPerformanceRecord) string {
	if rec == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d correct %s\n", rec.CorrectCount, rec.TotalQuestions, RenderProgress(rec.Accuracy, accuracyBarWidth, 0.8))
	if errs := errorSummary(rec.ErrorCounts); errs != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Mistakes:"), errs)
	}
	return b.String()
}

// FormatHistory renders graded attempts as a table, oldest first.
func FormatHistory(records []*domain.TeacherLevelPerformanceRecord) string {
	if len(records) == 0 {
		return Dim("No graded attempts yet.") + "\n"
	}
	headers := []string{"ID", "LEVEL", "SCORE", "ACCURACY", "RESULT", "MISTAKES", "WHEN"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		result := StyleGreen.Render("passed")
		if !r.Passed {
			result = StyleRed.Render("retry")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			strconv.Itoa(r.LevelNumber),
			fmt.Sprintf("%d/%d", r.CorrectCount, r.TotalQuestions),
			Percent(r.Accuracy),
			result,
			errorSummary(r.ErrorCounts),
			Dim(HumanTimestamp(r.CompletedAt)),
		})
	}
	return RenderTable(headers, rows)
}

func errorSummary(counts map[domain.CurriculumErrorType]int) string {
	keys := lo.Keys(counts)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s×%d", Humanize(string(k)), counts[k]))
	}
	return strings.Join(parts, ", ")
}
